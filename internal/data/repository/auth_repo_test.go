package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
)

func newMockAuthRepo(t *testing.T) (*AuthRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewAuthRepository(mock, zap.NewNop()), mock
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo, mock := newMockAuthRepo(t)
	now := time.Now().UTC()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
		WithArgs(user.Email).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password", "created_at", "updated_at"}).
			AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt))
	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	require.NoError(t, repo.User.Create(context.Background(), user))

	got, err := repo.User.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	missing, err := repo.User.FindByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newMockAuthRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(anyArgs(6)...).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.User.Create(context.Background(), &entity.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestSessionRepository(t *testing.T) {
	repo, mock := newMockAuthRepo(t)
	token := uuid.New()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(anyArgs(7)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM sessions").
		WithArgs(token).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec("UPDATE sessions").
		WithArgs(token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	ctx := context.Background()
	require.NoError(t, repo.Session.Create(ctx, &entity.Session{Token: token}))

	session, err := repo.Session.FindValidSession(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, session)

	assert.ErrorIs(t, repo.Session.Revoke(ctx, token), ErrRecordNotFound)

	cleaned, err := repo.Session.CleanExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cleaned)

	assert.NoError(t, mock.ExpectationsWereMet())
}
