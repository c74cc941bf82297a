package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jonwraymond/newsimpact/query"
)

// Config holds the store connection parameters, constructed once at startup
// and passed by injection.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Mongo is a Store backed by a pooled MongoDB client.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	log    zerolog.Logger
}

// Open connects to MongoDB, verifies the connection, and returns a Mongo
// store. The caller owns the lifecycle and must Close it at shutdown.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.URI, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.URI, err)
	}

	log.Info().Str("database", cfg.Database).Str("collection", cfg.Collection).Msg("store connected")

	return &Mongo{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		log:    log,
	}, nil
}

// Close releases the underlying client and its connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Execute runs the query with its filter, projection, sort, and limit exactly
// as translated. Any failure is reported as a single error wrapping
// ErrQueryFailed.
func (m *Mongo) Execute(ctx context.Context, q query.StoreQuery) ([]Record, error) {
	opts := options.Find().
		SetProjection(q.Projection).
		SetSort(q.Sort).
		SetLimit(q.Limit)

	cursor, err := m.coll.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, DecodeRecord(doc))
	}

	m.log.Debug().Int("count", len(records)).Msg("store query returned")
	return records, nil
}
