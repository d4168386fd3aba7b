package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

func TestComputeStats(t *testing.T) {
	promises := []models.Promise{
		{Party: models.NDC, Status: models.StatusPending, Category: models.Economy, Priority: models.Flagship},
		{Party: models.NDC, Status: models.StatusProgress, Category: models.Health, Priority: models.High},
		{Party: models.NPP, Status: models.StatusFulfilled, Category: models.Economy, Priority: models.Flagship},
		{Party: "CPP", Status: "unknown", Category: "tourism", Priority: models.Low},
	}

	stats := ComputeStats(promises, 9)

	assert.Equal(t, 4, stats.TotalPromises)
	assert.Equal(t, 9, stats.TotalReports)
	assert.Equal(t, map[models.Party]int{models.NDC: 2, models.NPP: 1}, stats.ByParty)
	assert.Equal(t, 2, stats.ByCategory[models.Economy])
	assert.Equal(t, 0, stats.ByCategory[models.Energy])
	assert.Len(t, stats.ByCategory, len(models.TrackedCategories))
	assert.Len(t, stats.ByStatus, len(models.TrackedStatuses))
	assert.Equal(t, 0, stats.ByStatus[models.StatusBroken])
	assert.Equal(t, 2, stats.FlagshipPromises)

	assert.Equal(t, stats, ComputeStats(promises, 9))
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 0)
	assert.Zero(t, stats.TotalPromises)
	assert.Len(t, stats.ByParty, 2)
	assert.Len(t, stats.ByStatus, 5)
}

func TestStatsFromStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	_, err := newPromiseRepo(store).SeedAll(ctx)
	require.NoError(t, err)
	_, err = newReportRepo(store).Submit(ctx, "uid-1", models.ReportInput{Title: "t", Details: "d"})
	require.NoError(t, err)

	stats, err := NewStatsRepository(store, zerolog.Nop()).Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 20, stats.TotalPromises)
	assert.Equal(t, 1, stats.TotalReports)
	assert.Equal(t, 16, stats.ByParty[models.NDC])
	assert.Equal(t, 4, stats.ByParty[models.NPP])
	assert.Equal(t, 5, stats.FlagshipPromises)
}

func TestStatsNilOnReadFailure(t *testing.T) {
	for _, failing := range []string{PromisesCollection, ReportsCollection} {
		t.Run(failing, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := docstore.NewMockStore(ctrl)
			store.EXPECT().GetAll(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, coll string) ([]bson.Raw, error) {
					if coll == failing {
						return nil, errors.New("offline")
					}
					return []bson.Raw{}, nil
				}).
				MaxTimes(2)

			stats, err := NewStatsRepository(store, zerolog.Nop()).Stats(context.Background())
			assert.Nil(t, stats)
			assert.ErrorIs(t, err, models.ErrUnavailable)
		})
	}
}
