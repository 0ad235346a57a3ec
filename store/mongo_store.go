package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storeCollection = "kvstore"

type mongoRecord struct {
	Key string `bson:"_id"`
	Raw []byte `bson:"raw"`
}

// MongoStore persists records as one document per key, upserted in place.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(storeCollection)}
}

func (m *MongoStore) Save(ctx context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": key}, mongoRecord{Key: key, Raw: raw}, opts)
	return err
}

func (m *MongoStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var rec mongoRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return decodeRecord(rec.Raw, dest)
}

func (m *MongoStore) Clear(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
