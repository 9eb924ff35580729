package config

import "os"

// CRMConfig holds the lead-capture endpoint settings
type CRMConfig struct {
	Endpoint  string `json:"endpoint"`
	APIKey    string `json:"-"` // Never serialize
	Source    string `json:"source"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultCRMConfig reads the CRM settings from the environment
func DefaultCRMConfig() *CRMConfig {
	timeout := 5000
	if d := getDuration("CRM_TIMEOUT", 0); d > 0 {
		timeout = int(d.Milliseconds())
	}
	return &CRMConfig{
		Endpoint:  os.Getenv("CRM_ENDPOINT"),
		APIKey:    os.Getenv("CRM_API_KEY"),
		Source:    getEnv("CRM_SOURCE", "font-quiz"),
		TimeoutMS: timeout,
	}
}

// IsEnabled returns true if a CRM endpoint is configured
func (c *CRMConfig) IsEnabled() bool {
	return c.Endpoint != ""
}
