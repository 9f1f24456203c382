package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/cache"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

var _ cache.Store = (*CacheStore)(nil)

const cacheCollection = "cache_entries"

// cacheDocument is the stored shape of one cache entry keyed by _id.
type cacheDocument struct {
	Key        string                    `bson:"_id"`
	Data       []models.WeightEstimation `bson:"data"`
	Timestamp  time.Time                 `bson:"timestamp"`
	TTLMinutes int                       `bson:"ttl_minutes"`
}

// CacheStore implements cache.Store on a MongoDB collection so cached data
// survives process restarts.
type CacheStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewCacheStore connects to MongoDB and verifies the connection.
func NewCacheStore(ctx context.Context, uri string, dbName string) (*CacheStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &CacheStore{
		client:   client,
		dbName:   dbName,
		collName: cacheCollection,
	}, nil
}

func (s *CacheStore) collection() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(s.collName)
}

// Load reads the entry stored under key.
func (s *CacheStore) Load(ctx context.Context, key string) (models.CacheEntry, bool, error) {
	var doc cacheDocument
	err := s.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CacheEntry{}, false, nil
	}
	if err != nil {
		return models.CacheEntry{}, false, fmt.Errorf("failed to load cache entry %s: %w", key, err)
	}
	return models.CacheEntry{
		Data:       doc.Data,
		Timestamp:  doc.Timestamp,
		TTLMinutes: doc.TTLMinutes,
	}, true, nil
}

// Save upserts the entry under key. Concurrent writers are last-write-wins.
func (s *CacheStore) Save(ctx context.Context, key string, entry models.CacheEntry) error {
	doc := cacheDocument{
		Key:        key,
		Data:       entry.Data,
		Timestamp:  entry.Timestamp,
		TTLMinutes: entry.TTLMinutes,
	}
	_, err := s.collection().ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save cache entry %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key.
func (s *CacheStore) Delete(ctx context.Context, key string) error {
	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete cache entry %s: %w", key, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (s *CacheStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
