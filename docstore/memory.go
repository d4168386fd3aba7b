package docstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore implements Store in process memory, keeping insertion order.
// Selected with DOCSTORE_DRIVER=memory and used by tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryDoc
}

type memoryDoc struct {
	id  string
	raw bson.Raw
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]memoryDoc)}
}

func (s *MemoryStore) AddOne(ctx context.Context, collection string, doc any) (string, error) {
	d, err := toMemoryDoc(doc)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], d)
	return d.id, nil
}

// BatchWrite converts every document before storing any, so a bad document
// leaves the collection untouched.
func (s *MemoryStore) BatchWrite(ctx context.Context, collection string, docs []any) error {
	if err := checkBatch(len(docs)); err != nil {
		return err
	}
	converted := make([]memoryDoc, 0, len(docs))
	for _, doc := range docs {
		d, err := toMemoryDoc(doc)
		if err != nil {
			return err
		}
		converted = append(converted, d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], converted...)
	return nil
}

func (s *MemoryStore) BatchDelete(ctx context.Context, collection string, ids []string) error {
	if err := checkBatch(len(ids)); err != nil {
		return err
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.collections[collection][:0]
	for _, d := range s.collections[collection] {
		if _, ok := drop[d.id]; !ok {
			kept = append(kept, d)
		}
	}
	s.collections[collection] = kept
	return nil
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string) ([]bson.Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.collections[collection]
	out := make([]bson.Raw, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.raw)
	}
	return out, nil
}

func (s *MemoryStore) GetWhere(ctx context.Context, collection, field string, value any) ([]bson.Raw, error) {
	want, err := normalize(value)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []bson.Raw
	for _, d := range s.collections[collection] {
		var m bson.M
		if err := bson.Unmarshal(d.raw, &m); err != nil {
			return nil, fmt.Errorf("decode stored document: %w", err)
		}
		if got, ok := m[field]; ok && reflect.DeepEqual(got, want) {
			out = append(out, d.raw)
		}
	}
	return out, nil
}

func toMemoryDoc(doc any) (memoryDoc, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return memoryDoc{}, fmt.Errorf("encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return memoryDoc{}, fmt.Errorf("encode document: %w", err)
	}
	id, _ := m["_id"].(string)
	if id == "" {
		id = uuid.NewString()
		m["_id"] = id
		if raw, err = bson.Marshal(m); err != nil {
			return memoryDoc{}, fmt.Errorf("encode document: %w", err)
		}
	}
	return memoryDoc{id: id, raw: raw}, nil
}

// normalize round-trips a query value through BSON so it compares equal to
// stored values of the same logical type.
func normalize(value any) (any, error) {
	raw, err := bson.Marshal(bson.M{"v": value})
	if err != nil {
		return nil, fmt.Errorf("encode query value: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode query value: %w", err)
	}
	return m["v"], nil
}
