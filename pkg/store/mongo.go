package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/protolab/protoboard/pkg/pipeline"
)

// Collection names within the database.
const (
	layoutsCollection     = "layouts"
	correctionsCollection = "corrections"
)

// MongoStore is a MongoDB-backed Store for server deployments.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. The corrections collection gets a unique index on (kind, marking)
// so SaveCorrection can upsert.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	s := &MongoStore{
		client: client,
		db:     client.Database(database),
	}

	_, err = s.db.Collection(correctionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "marking", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

// SaveLayout upserts a layout artifact by ID.
func (s *MongoStore) SaveLayout(ctx context.Context, l pipeline.Layout) error {
	_, err := s.db.Collection(layoutsCollection).ReplaceOne(ctx,
		bson.M{"_id": l.ID},
		l,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetLayout retrieves a layout by ID.
func (s *MongoStore) GetLayout(ctx context.Context, id uuid.UUID) (pipeline.Layout, error) {
	var l pipeline.Layout
	err := s.db.Collection(layoutsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return pipeline.Layout{}, ErrNotFound
	}
	if err != nil {
		return pipeline.Layout{}, err
	}
	return l, nil
}

// ListLayouts returns up to limit layouts, newest first.
func (s *MongoStore) ListLayouts(ctx context.Context, limit int) ([]pipeline.Layout, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}

	cur, err := s.db.Collection(layoutsCollection).Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []pipeline.Layout
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveCorrection upserts a correction by kind and marking.
func (s *MongoStore) SaveCorrection(ctx context.Context, c Correction) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Collection(correctionsCollection).ReplaceOne(ctx,
		bson.M{"kind": c.Kind, "marking": c.Marking},
		c,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetCorrection retrieves the correction for a kind and marking.
func (s *MongoStore) GetCorrection(ctx context.Context, kind, marking string) (Correction, error) {
	var c Correction
	err := s.db.Collection(correctionsCollection).
		FindOne(ctx, bson.M{"kind": kind, "marking": marking}).
		Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Correction{}, ErrNotFound
	}
	if err != nil {
		return Correction{}, err
	}
	return c, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
