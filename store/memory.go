package store

import (
	"context"
	"reflect"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStore returns a Store backed by in-process maps. It keeps
// insertion order, which stands in for the database's natural order.
// Used by the tests and as a credential-free dev backend.
func NewMemoryStore() *Store {
	return &Store{
		Users:    &memoryCollection{},
		Services: &memoryCollection{},
		Bookings: &memoryCollection{},
	}
}

type memoryCollection struct {
	mu   sync.RWMutex
	docs []Document
}

func (m *memoryCollection) FindOne(ctx context.Context, filter Document) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.docs {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, ErrNoDocuments
}

func (m *memoryCollection) Find(ctx context.Context, filter Document, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Document{}
	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, clone(doc))
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryCollection) InsertOne(ctx context.Context, doc Document) (*InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := clone(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, stored)
	return &InsertResult{Acknowledged: true, InsertedID: stored["_id"]}, nil
}

func (m *memoryCollection) UpdateOne(ctx context.Context, filter, fields Document) (*UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		res := &UpdateResult{MatchedCount: 1}
		for k, v := range fields {
			if old, ok := doc[k]; ok && reflect.DeepEqual(old, v) {
				continue
			}
			doc[k] = v
			res.ModifiedCount = 1
		}
		return res, nil
	}
	return &UpdateResult{}, nil
}

func (m *memoryCollection) DeleteOne(ctx context.Context, filter Document) (*DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, doc := range m.docs {
		if matches(doc, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{}, nil
}

func matches(doc, filter Document) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if rx, isRegex := want.(primitive.Regex); isRegex {
			s, isString := got.(string)
			if !isString || !regexMatch(rx, s) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func regexMatch(rx primitive.Regex, s string) bool {
	pattern := rx.Pattern
	if rx.Options != "" {
		pattern = "(?" + rx.Options + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
