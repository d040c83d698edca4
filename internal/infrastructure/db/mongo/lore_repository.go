package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

const loreCollection = "lore_entries"

type LoreRepository struct {
	col *mongo.Collection
}

func NewLoreRepository(db *mongo.Database) *LoreRepository {
	return &LoreRepository{col: db.Collection(loreCollection)}
}

type loreDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Kind      string             `bson:"kind"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	Summary   string             `bson:"summary,omitempty"`
	Body      string             `bson:"body"`
	Tags      []string           `bson:"tags,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *loreDoc) toDomain() *domain.LoreEntry {
	return &domain.LoreEntry{
		ID:        d.ID.Hex(),
		Kind:      domain.LoreKind(d.Kind),
		Name:      d.Name,
		Slug:      d.Slug,
		Summary:   d.Summary,
		Body:      d.Body,
		Tags:      d.Tags,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *LoreRepository) Create(ctx context.Context, e *domain.LoreEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := loreDoc{
		ID:        primitive.NewObjectID(),
		Kind:      string(e.Kind),
		Name:      e.Name,
		Slug:      e.Slug,
		Summary:   e.Summary,
		Body:      e.Body,
		Tags:      e.Tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert lore entry: %w", err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *LoreRepository) FindBySlug(ctx context.Context, kind domain.LoreKind, slug string) (*domain.LoreEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc loreDoc
	err := r.col.FindOne(ctx, bson.M{"kind": string(kind), "slug": slug}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLoreNotFound
		}
		return nil, fmt.Errorf("find lore entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LoreRepository) List(ctx context.Context, f ports.LoreFilter) ([]*domain.LoreEntry, int64, error) {
	filter := bson.M{"kind": string(f.Kind)}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Search != "" {
		filter["name"] = containsFold(f.Search)
	}
	return findPage(ctx, r.col, filter, f.Page, f.Limit, (*loreDoc).toDomain)
}

func (r *LoreRepository) Update(ctx context.Context, e *domain.LoreEntry) error {
	oid, ok := objectID(e.ID)
	if !ok {
		return domain.ErrLoreNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":       e.Name,
		"slug":       e.Slug,
		"summary":    e.Summary,
		"body":       e.Body,
		"tags":       e.Tags,
		"updated_at": e.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("update lore entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLoreNotFound
	}
	return nil
}

func (r *LoreRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id, domain.ErrLoreNotFound)
}

// EnsureIndexes makes slugs unique within a kind and indexes tags for the
// tag filter.
func (r *LoreRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "tags", Value: 1}}},
	})
	return err
}
