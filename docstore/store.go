// Package docstore is the narrow document-store contract the repositories
// are written against, with a MongoDB adapter and an in-memory adapter.
package docstore

//go:generate mockgen -source=store.go -destination=mock_store.go -package=docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// MaxBatchSize is the largest number of operations accepted by one
// BatchWrite or BatchDelete call.
const MaxBatchSize = 500

var ErrBatchTooLarge = errors.New("docstore: batch exceeds limit")

// Store is the capability set the core needs from the document database.
// Identities are assigned by the store on insert and returned as strings.
type Store interface {
	AddOne(ctx context.Context, collection string, doc any) (string, error)
	BatchWrite(ctx context.Context, collection string, docs []any) error
	BatchDelete(ctx context.Context, collection string, ids []string) error
	GetAll(ctx context.Context, collection string) ([]bson.Raw, error)
	GetWhere(ctx context.Context, collection, field string, value any) ([]bson.Raw, error)
}

// Decode unmarshals raw documents into T, in order.
func Decode[T any](raws []bson.Raw) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := bson.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// IDs extracts the _id of each raw document as a string.
func IDs(raws []bson.Raw) ([]string, error) {
	type idOnly struct {
		ID string `bson:"_id"`
	}
	docs, err := Decode[idOnly](raws)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func checkBatch(n int) error {
	if n > MaxBatchSize {
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, n, MaxBatchSize)
	}
	return nil
}
