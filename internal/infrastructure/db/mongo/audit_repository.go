package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository stores admin override events. The collection is
// append-only.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ActorID    string             `bson:"actor_id"`
	ActorRole  string             `bson:"actor_role"`
	Action     string             `bson:"action"`
	Resource   string             `bson:"resource"`
	ResourceID string             `bson:"resource_id"`
	OwnerID    string             `bson:"owner_id"`
	At         time.Time          `bson:"at"`
}

func (r *AuditRepository) InsertEvent(ctx context.Context, e *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, auditDoc{
		ActorID:    e.ActorID,
		ActorRole:  string(e.ActorRole),
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		OwnerID:    e.OwnerID,
		At:         e.At,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "actor_id", Value: 1}, {Key: "at", Value: -1}}},
	})
	return err
}
