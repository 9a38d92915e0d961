package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"letify_backend/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDoc stores the record's JSON text under its key.
type mongoDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore maps every key to one document in a single collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to uri and pings the primary.
func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("kvstore: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("kvstore: mongo ping: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	logger.StoreLog("mongo", "get", key, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc.Value), nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		mongoDoc{Key: key, Value: string(value)},
		options.Replace().SetUpsert(true),
	)
	logger.StoreLog("mongo", "set", key, time.Since(start), err)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	logger.StoreLog("mongo", "delete", key, time.Since(start), err)
	return err
}

func (s *MongoStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	start := time.Now()
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		logger.StoreLog("mongo", "scan", prefix, time.Since(start), err)
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]Entry, 0)
	for cursor.Next(ctx) {
		var doc mongoDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: doc.Key, Value: json.RawMessage(doc.Value)})
	}
	err = cursor.Err()
	logger.StoreLog("mongo", "scan", prefix, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
