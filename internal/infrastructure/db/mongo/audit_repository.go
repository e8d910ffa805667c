package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecommercekit/auth-api/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository persists authentication audit events.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Email      string `bson:"email"`
	Action     string `bson:"action"`
	OccurredAt int64  `bson:"occurred_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Email:      event.Email,
		Action:     string(event.Action),
		OccurredAt: event.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
