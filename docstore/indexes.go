package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Index names an ascending index over fields in one collection.
type Index struct {
	Collection string
	Fields     []string
}

// EnsureIndexes creates any missing indexes. Existing identical indexes
// are left as they are.
func (s *MongoStore) EnsureIndexes(ctx context.Context, indexes ...Index) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, idx := range indexes {
		keys := make(bson.D, 0, len(idx.Fields))
		for _, f := range idx.Fields {
			keys = append(keys, bson.E{Key: f, Value: 1})
		}
		if _, err := s.db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("create index on %s %v: %w", idx.Collection, idx.Fields, err)
		}
	}
	return nil
}
