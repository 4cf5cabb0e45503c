package clients

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/cfg"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient holds the document-store connection and its target database.
type MongoClient struct {
	Client *mongo.Client
	cfg    *cfg.MongoCfg
}

// NewMongoClient connects to MongoDB and verifies the connection with a ping.
func NewMongoClient(cfg *cfg.MongoCfg) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &MongoClient{Client: client, cfg: cfg}, nil
}

// Database returns the configured application database.
func (m *MongoClient) Database() *mongo.Database {
	return m.Client.Database(m.cfg.Database)
}

// Close disconnects from MongoDB.
func (m *MongoClient) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
