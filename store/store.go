package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schemaless record. Fields the handlers never look at
// pass through the store untouched in both directions.
type Document = bson.M

// ErrNoDocuments is returned by FindOne when nothing matches the filter.
var ErrNoDocuments = errors.New("store: no documents in result")

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the document-store gateway the handlers talk to.
// Filters are plain field-equality documents, except for the regex
// values produced by Contains.
type Collection interface {
	FindOne(ctx context.Context, filter Document) (Document, error)
	// Find collects every matching document eagerly. limit <= 0 means
	// no limit.
	Find(ctx context.Context, filter Document, limit int64) ([]Document, error)
	InsertOne(ctx context.Context, doc Document) (*InsertResult, error)
	// UpdateOne overwrites only the named fields of the first match.
	UpdateOne(ctx context.Context, filter, fields Document) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter Document) (*DeleteResult, error)
}

// Store bundles one gateway per collection. Built once at startup and
// handed to the controllers.
type Store struct {
	Users    Collection
	Services Collection
	Bookings Collection
}

// ParseID turns a client-supplied id token into a store identifier.
// A malformed token is an error, not a missing document.
func ParseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// Contains builds a case-insensitive unanchored substring filter on
// field. Both backends understand the resulting regex value.
func Contains(field, substr string) Document {
	return Document{field: primitive.Regex{Pattern: regexp.QuoteMeta(substr), Options: "i"}}
}
