package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func literalPromises(n int) []models.Promise {
	out := make([]models.Promise, n)
	for i := range out {
		out[i] = models.Promise{
			Ref:      fmt.Sprintf("lit-%04d", i),
			Party:    models.NDC,
			Year:     2024,
			Title:    fmt.Sprintf("Promise %d", i),
			Category: models.Economy,
			Priority: models.Medium,
			Status:   models.StatusPending,
			Region:   models.NationalRegion,
			Views:    7,
		}
	}
	return out
}

func newPromiseRepo(store docstore.Store) *PromiseRepository {
	repo := NewPromiseRepository(store, 0, zerolog.Nop())
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func TestSeedChunksIntoBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docstore.NewMockStore(ctrl)

	var sizes []int
	store.EXPECT().
		BatchWrite(gomock.Any(), PromisesCollection, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, docs []any) error {
			sizes = append(sizes, len(docs))
			return nil
		}).
		Times(3)

	count, err := newPromiseRepo(store).Seed(context.Background(), literalPromises(1200))
	require.NoError(t, err)
	assert.Equal(t, 1200, count)
	assert.Equal(t, []int{500, 500, 200}, sizes)
}

func TestSeedAttachesMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docstore.NewMockStore(ctrl)

	store.EXPECT().
		BatchWrite(gomock.Any(), PromisesCollection, gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ string, docs []any) error {
			p := docs[0].(models.Promise)
			assert.Empty(t, p.ID)
			assert.Equal(t, fixedNow, p.CreatedAt)
			assert.Equal(t, fixedNow, p.UpdatedAt)
			assert.Zero(t, p.Views)
			assert.Zero(t, p.Reports)
			assert.Zero(t, p.Likes)
			return nil
		})

	input := literalPromises(1)
	input[0].ID = "stale-id"
	_, err := newPromiseRepo(store).Seed(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), input[0].Views, "caller's slice is left alone")
}

func TestSeedStopsAtFirstFailedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docstore.NewMockStore(ctrl)

	boom := errors.New("quota exceeded")
	gomock.InOrder(
		store.EXPECT().BatchWrite(gomock.Any(), PromisesCollection, gomock.Len(500)).Return(nil),
		store.EXPECT().BatchWrite(gomock.Any(), PromisesCollection, gomock.Len(500)).Return(boom),
	)

	count, err := newPromiseRepo(store).Seed(context.Background(), literalPromises(1200))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 500, count)
}

func TestSeedTwiceDuplicatesRecords(t *testing.T) {
	// No natural key exists, so a second seed without a clear doubles the
	// collection. This pins the current behaviour.
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := newPromiseRepo(store)

	first, err := repo.SeedAll(ctx)
	require.NoError(t, err)
	_, err = repo.SeedAll(ctx)
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2*first)
}

func TestReseedReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := newPromiseRepo(store)

	_, err := repo.Seed(ctx, literalPromises(3))
	require.NoError(t, err)

	count, err := repo.Reseed(ctx)
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, count)
	for _, p := range all {
		assert.NotContains(t, p.Ref, "lit-")
	}
}

func TestReseedSkipsSeedWhenClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docstore.NewMockStore(ctrl)

	store.EXPECT().GetAll(gomock.Any(), PromisesCollection).Return(nil, errors.New("offline"))
	store.EXPECT().BatchWrite(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	count, err := newPromiseRepo(store).Reseed(context.Background())
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestClearAllDeletesInBatches(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := NewPromiseRepository(store, 2, zerolog.Nop())

	_, err := repo.Seed(ctx, literalPromises(5))
	require.NoError(t, err)

	deleted, err := repo.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, deleted)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeedSubset(t *testing.T) {
	ctx := context.Background()
	repo := newPromiseRepo(docstore.NewMemoryStore())

	count, err := repo.SeedSubset(ctx, models.NPP, 2016)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = repo.SeedSubset(ctx, models.NPP, 2028)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReadsFilterSeededPromises(t *testing.T) {
	ctx := context.Background()
	repo := newPromiseRepo(docstore.NewMemoryStore())
	_, err := repo.SeedAll(ctx)
	require.NoError(t, err)

	npp, err := repo.ByParty(ctx, models.NPP)
	require.NoError(t, err)
	assert.Len(t, npp, 4)

	flagship, err := repo.Flagship(ctx)
	require.NoError(t, err)
	assert.Len(t, flagship, 5)

	fulfilled, err := repo.ByStatus(ctx, models.StatusFulfilled)
	require.NoError(t, err)
	for _, p := range fulfilled {
		assert.Equal(t, models.StatusFulfilled, p.Status)
	}

	economy, err := repo.ByCategory(ctx, models.Economy)
	require.NoError(t, err)
	require.NotEmpty(t, economy)

	byID, err := repo.ByID(ctx, economy[0].ID)
	require.NoError(t, err)
	assert.Equal(t, economy[0].Title, byID.Title)

	_, err = repo.ByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestByRegionIncludesNationalPromises(t *testing.T) {
	ctx := context.Background()
	repo := newPromiseRepo(docstore.NewMemoryStore())

	promises := literalPromises(3)
	promises[1].Region = "Ashanti"
	promises[2].Region = "Volta"
	_, err := repo.Seed(ctx, promises)
	require.NoError(t, err)

	got, err := repo.ByRegion(ctx, "ashanti")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "lit-0000", got[0].Ref)
	assert.Equal(t, "lit-0001", got[1].Ref)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := newPromiseRepo(docstore.NewMemoryStore())

	promises := literalPromises(3)
	promises[0].Title = "Reduce INFLATION to single digits"
	promises[1].Description = "Keep consumer inflation low"
	promises[2].Category = models.Health
	_, err := repo.Seed(ctx, promises)
	require.NoError(t, err)

	got, err := repo.Search(ctx, "Inflation")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.Search(ctx, "HEALTH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "lit-0002", got[0].Ref)
}

func TestReadsReturnEmptySliceOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := docstore.NewMockStore(ctrl)
	offline := errors.New("offline")

	store.EXPECT().GetAll(gomock.Any(), PromisesCollection).Return(nil, offline).AnyTimes()
	store.EXPECT().GetWhere(gomock.Any(), PromisesCollection, gomock.Any(), gomock.Any()).Return(nil, offline).AnyTimes()

	repo := newPromiseRepo(store)
	ctx := context.Background()

	reads := map[string]func() ([]models.Promise, error){
		"all":      func() ([]models.Promise, error) { return repo.All(ctx) },
		"party":    func() ([]models.Promise, error) { return repo.ByParty(ctx, models.NDC) },
		"flagship": func() ([]models.Promise, error) { return repo.Flagship(ctx) },
		"region":   func() ([]models.Promise, error) { return repo.ByRegion(ctx, "Volta") },
		"search":   func() ([]models.Promise, error) { return repo.Search(ctx, "jobs") },
	}
	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			got, err := read()
			require.ErrorIs(t, err, offline)
			assert.ErrorIs(t, err, models.ErrUnavailable)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}
