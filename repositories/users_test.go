package repositories

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

func TestCreateAnonymousAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(docstore.NewMemoryStore(), zerolog.Nop())

	first, err := repo.CreateAnonymous(ctx)
	require.NoError(t, err)
	second, err := repo.CreateAnonymous(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.UID, second.UID)
	assert.True(t, first.Anonymous)

	got, err := repo.ByUID(ctx, first.UID)
	require.NoError(t, err)
	assert.Equal(t, first.UID, got.UID)

	_, err = repo.ByUID(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
