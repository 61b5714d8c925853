package test

import (
	"testing"
	"time"

	"github.com/momo66-22/telegram-feed-pages/internal/kvstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("success", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		startCursor := mtest.CreateCursorResponse(1, "feedpages.kv_items", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "k1"},
			{Key: "value", Value: "v1"},
		})
		mt.AddMockResponses(startCursor)

		value, err := repo.Get("k1")
		if err != nil {
			t.Errorf("wrong result, got error: %v", err)
			return
		}
		if value != "v1" {
			t.Errorf("wrong result, expected v1, got %s", value)
		}
	})

	mt.Run("not exist", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		emptyCursor := mtest.CreateCursorResponse(0, "feedpages.kv_items", mtest.FirstBatch)
		mt.AddMockResponses(emptyCursor)

		_, err := repo.Get("k1")
		if err != kvstore.ErrNotExist {
			t.Errorf("expected error %v, got %v", kvstore.ErrNotExist, err)
		}
	})

	mt.Run("expired", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		startCursor := mtest.CreateCursorResponse(1, "feedpages.kv_items", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "k1"},
			{Key: "value", Value: "v1"},
			{Key: "expires_at", Value: time.Now().Add(-time.Hour)},
		})
		mt.AddMockResponses(startCursor, mtest.CreateSuccessResponse())

		_, err := repo.Get("k1")
		if err != kvstore.ErrNotExist {
			t.Errorf("expected error %v for expired key, got %v", kvstore.ErrNotExist, err)
		}
	})

	mt.Run("find error", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}})

		_, err := repo.Get("k1")
		if err == nil {
			t.Errorf("expected error, got nil")
		}
	})
}

func TestMongoPut(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("success", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Put("k1", "v1", time.Hour)
		if err != nil {
			t.Errorf("wrong result, got error: %v", err)
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}})

		err := repo.Put("k1", "v1", 0)
		if err == nil {
			t.Errorf("expected error, got nil")
		}
	})
}

func TestMongoDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("success", func(mt *mtest.T) {
		repo := kvstore.MongoRepo{
			Items: mt.Coll,
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Delete("k1")
		if err != nil {
			t.Errorf("wrong result, got error: %v", err)
		}
	})
}
