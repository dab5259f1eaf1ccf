package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/civicgrid/complaints-platform/internal/config"
)

const complaintsCollection = "complaints"

// Mongo wraps the document database client.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *zap.Logger
}

// NewMongo connects to the document database and verifies connectivity.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Complaints returns the complaints collection handle.
func (m *Mongo) Complaints() *mongo.Collection {
	return m.database.Collection(complaintsCollection)
}

// EnsureIndexes creates the unique index on the complaint identifier.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Complaints().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "complaintId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create complaintId index: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Warn("mongodb disconnect", zap.Error(err))
	}
}
