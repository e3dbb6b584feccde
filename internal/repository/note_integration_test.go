//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/notes-api/internal/database"
	"github.com/deppfellow/notes-api/internal/model"
	"github.com/deppfellow/notes-api/internal/repository"
)

// setup migrates the database named by NOTES_TEST_DATABASE_URL and returns a
// repository bound to a transaction that is rolled back when the test ends.
func setup(t *testing.T) *repository.NoteRepository {
	t.Helper()

	dsn := os.Getenv("NOTES_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("NOTES_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	log := zerolog.Nop()
	require.NoError(t, database.Migrate(ctx, &log, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := tx.Rollback(ctx); err != nil {
			t.Logf("unable to rollback transaction: %v", err)
		}
	})

	// Start from an empty table inside the transaction.
	_, err = tx.Exec(ctx, "DELETE FROM notes")
	require.NoError(t, err)

	return repository.NewNoteRepository(tx)
}

func ptr(s string) *string { return &s }

func TestIntegrationNoteRepository_CreateAndGet(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateNoteParams{Name: "Shopping", Body: "Buy milk"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Shopping", created.Name)
	assert.Equal(t, "Buy milk", created.Body)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestIntegrationNoteRepository_GetMissing(t *testing.T) {
	repo := setup(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestIntegrationNoteRepository_ListNewestFirst(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	// now() is fixed per transaction, so sleep would not separate the rows.
	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, model.CreateNoteParams{Name: name, Body: name})
		require.NoError(t, err)
	}

	notes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for i := 1; i < len(notes); i++ {
		assert.False(t, notes[i].CreatedAt.After(notes[i-1].CreatedAt))
	}
}

func TestIntegrationNoteRepository_PartialUpdate(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateNoteParams{Name: "Shopping", Body: "Buy milk"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.UpdateNoteParams{Body: ptr("Buy oat milk")})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", updated.Name)
	assert.Equal(t, "Buy oat milk", updated.Body)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	again, err := repo.Update(ctx, created.ID, model.UpdateNoteParams{Body: ptr("Buy oat milk")})
	require.NoError(t, err)
	assert.Equal(t, updated, again)

	_, err = repo.Update(ctx, uuid.New(), model.UpdateNoteParams{Name: ptr("x")})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestIntegrationNoteRepository_DeleteTwice(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateNoteParams{Name: "Shopping", Body: "Buy milk"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
