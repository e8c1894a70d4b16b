package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoStore wraps the three collections of the given database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:    &mongoCollection{coll: db.Collection("users")},
		Services: &mongoCollection{coll: db.Collection("services")},
		Bookings: &mongoCollection{coll: db.Collection("bookings")},
	}
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (m *mongoCollection) FindOne(ctx context.Context, filter Document) (Document, error) {
	var doc Document
	err := m.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *mongoCollection) Find(ctx context.Context, filter Document, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc Document) (*InsertResult, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (m *mongoCollection) UpdateOne(ctx context.Context, filter, fields Document) (*UpdateResult, error) {
	res, err := m.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *mongoCollection) DeleteOne(ctx context.Context, filter Document) (*DeleteResult, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
