package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database. Documents without an
// _id get an ObjectID from the driver; ids are exchanged as hex strings.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) AddOne(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return idString(res.InsertedID), nil
}

// BatchWrite inserts docs with one ordered InsertMany. A failure stops at
// the first failing document.
func (s *MongoStore) BatchWrite(ctx context.Context, collection string, docs []any) error {
	if err := checkBatch(len(docs)); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := s.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("batch insert into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) BatchDelete(ctx context.Context, collection string, ids []string) error {
	if err := checkBatch(len(ids)); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	keys := make([]any, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			keys = append(keys, oid)
			continue
		}
		keys = append(keys, id)
	}
	_, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return fmt.Errorf("batch delete from %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) GetAll(ctx context.Context, collection string) ([]bson.Raw, error) {
	return s.find(ctx, collection, bson.M{})
}

func (s *MongoStore) GetWhere(ctx context.Context, collection, field string, value any) ([]bson.Raw, error) {
	return s.find(ctx, collection, bson.M{field: value})
}

func (s *MongoStore) find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raws []bson.Raw
	for cursor.Next(ctx) {
		raws = append(raws, append(bson.Raw(nil), cursor.Current...))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return raws, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
