package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker-api/domain/models"
	"task-tracker-api/domain/repositories"
	"task-tracker-api/infrastructure/postgres"
	"task-tracker-api/pkg/testutil"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewUserRepository(testutil.NewTestDB(t))

	name := "Ada"
	user := &models.User{Email: "ada@example.com", Password: "hash", Name: &name}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
	require.NotNil(t, byID.Name)
	assert.Equal(t, "Ada", *byID.Name)

	byEmail, err := repo.GetByEmail(ctx, "ADA@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewUserRepository(testutil.NewTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "hash"}))

	err := repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "hash"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewUserRepository(testutil.NewTestDB(t))

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
