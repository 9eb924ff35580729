package service

// Event types pushed to session subscribers
const (
	EventSessionUpdated = "session_updated"
	EventResultsReady   = "results_ready"
	EventSessionClosed  = "session_closed"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}
