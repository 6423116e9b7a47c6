package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-register/models"
)

// MongoStore keeps the override layer in a MongoDB collection, one
// document per product keyed by code. Useful when several registers
// should share admin edits; semantics stay last-write-wins.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore returns a store over the register database's
// "overrides" collection.
func NewMongoStore(client *mongo.Client) *MongoStore {
	collection := client.Database("register").Collection("overrides")
	return &MongoStore{Collection: collection}
}

// Load reads every override document.
func (s *MongoStore) Load(ctx context.Context) (map[string]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := map[string]models.Product{}
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		out[p.Code] = p
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the whole collection with the given map. Override sets
// are tiny, so a full rewrite per save is simpler than diffing and
// matches the file store's behavior.
func (s *MongoStore) Save(ctx context.Context, overrides map[string]models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(overrides) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(overrides))
	for _, p := range overrides {
		docs = append(docs, p)
	}
	_, err := s.Collection.InsertMany(ctx, docs)
	return err
}
