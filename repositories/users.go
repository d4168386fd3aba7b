package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"promisewatch-be/docstore"
	"promisewatch-be/models"
)

const UsersCollection = "users"

// UserRepository registers anonymous users.
type UserRepository struct {
	store docstore.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewUserRepository(store docstore.Store, log zerolog.Logger) *UserRepository {
	return &UserRepository{
		store: store,
		log:   log.With().Str("component", "user_repository").Logger(),
		now:   time.Now,
	}
}

// CreateAnonymous stores a user with a fresh random uid.
func (r *UserRepository) CreateAnonymous(ctx context.Context) (models.User, error) {
	user := models.User{
		UID:       uuid.NewString(),
		Anonymous: true,
		CreatedAt: r.now().UTC(),
	}
	if _, err := r.store.AddOne(ctx, UsersCollection, user); err != nil {
		r.log.Error().Err(err).Msg("create anonymous user failed")
		return models.User{}, fmt.Errorf("create anonymous user: %w", err)
	}
	return user, nil
}

// ByUID returns the user registered under uid.
func (r *UserRepository) ByUID(ctx context.Context, uid string) (models.User, error) {
	raws, err := r.store.GetWhere(ctx, UsersCollection, "_id", uid)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}
	users, err := docstore.Decode[models.User](raws)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, fmt.Errorf("user %s: %w", uid, models.ErrNotFound)
	}
	return users[0], nil
}
