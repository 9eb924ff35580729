package repository

import (
	"context"
	"fmt"

	"fontquiz/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadRepo archives captured leads and contact-form messages
type LeadRepo interface {
	SaveLead(ctx context.Context, lead *model.Lead) error
	SaveContact(ctx context.Context, msg *model.ContactMessage) error
	ListLeads(ctx context.Context, event model.LeadEvent, limit int64) ([]*model.Lead, error)
}

type leadRepo struct {
	leads    *mongo.Collection
	contacts *mongo.Collection
}

// NewLeadRepo creates a new lead repository
func NewLeadRepo(db *mongo.Database) LeadRepo {
	return &leadRepo{
		leads:    db.Collection("leads"),
		contacts: db.Collection("contact_messages"),
	}
}

// SaveLead upserts on (sessionId, event) so a retried capture does not duplicate
func (r *leadRepo) SaveLead(ctx context.Context, lead *model.Lead) error {
	filter := bson.M{"sessionId": lead.SessionID, "event": lead.Event}
	update := bson.M{"$set": bson.M{
		"email":      lead.Email,
		"results":    lead.Results,
		"capturedAt": lead.CapturedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.leads.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

func (r *leadRepo) SaveContact(ctx context.Context, msg *model.ContactMessage) error {
	if _, err := r.contacts.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// ListLeads returns the newest leads first. An empty event matches all.
func (r *leadRepo) ListLeads(ctx context.Context, event model.LeadEvent, limit int64) ([]*model.Lead, error) {
	filter := bson.M{}
	if event != "" {
		filter["event"] = event
	}
	opts := options.Find().SetSort(bson.D{{Key: "capturedAt", Value: -1}}).SetLimit(limit)

	cursor, err := r.leads.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
