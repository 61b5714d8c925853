package kvstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Item struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

type MongoRepo struct {
	Items *mongo.Collection
}

var _ Store = (*MongoRepo)(nil)

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		Items: db.Collection("kv_items"),
	}
}

func (r *MongoRepo) Get(key string) (string, error) {
	filter := bson.M{"_id": key}
	item := &Item{}
	err := r.Items.FindOne(context.TODO(), filter).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrNotExist
		}

		return "", err
	}

	if !item.ExpiresAt.IsZero() && time.Now().After(item.ExpiresAt) {
		_, _ = r.Items.DeleteOne(context.TODO(), filter)
		return "", ErrNotExist
	}

	return item.Value, nil
}

func (r *MongoRepo) Put(key string, value string, ttl time.Duration) error {
	item := Item{
		Key:   key,
		Value: value,
	}
	if ttl > 0 {
		item.ExpiresAt = time.Now().Add(ttl)
	}

	option := options.Replace().SetUpsert(true)
	_, err := r.Items.ReplaceOne(context.TODO(), bson.M{"_id": key}, item, option)

	return err
}

func (r *MongoRepo) Delete(key string) error {
	_, err := r.Items.DeleteOne(context.TODO(), bson.M{"_id": key})

	return err
}
