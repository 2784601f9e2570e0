package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateResetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewResetTokensRepoWithConn(mock)
	ctx := context.Background()
	token := &entity.PasswordResetToken{
		Email:     "reader@example.com",
		Otp:       "4821",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	query := regexp.QuoteMeta(`INSERT INTO password_reset_tokens (email, otp, expires_at, used) VALUES ($1, $2, $3, $4);`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(token.Email, token.Otp, token.ExpiresAt, token.Used).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, token)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(token.Email, token.Otp, token.ExpiresAt, token.Used).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, token)
		assert.Error(t, err)
	})
}

func TestGetResetTokenByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewResetTokensRepoWithConn(mock)
	ctx := context.Background()
	token := &entity.PasswordResetToken{
		ID:        uuid.New(),
		Email:     "reader@example.com",
		Otp:       "4821",
		ExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, otp, expires_at, used, created_at FROM password_reset_tokens
		WHERE email = $1 ORDER BY created_at DESC LIMIT 1;`)
	t.Run("latest token returned", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(token.Email).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "otp", "expires_at", "used", "created_at"}).
				AddRow(token.ID, token.Email, token.Otp, token.ExpiresAt, token.Used, token.CreatedAt))
		res, err := repo.GetByEmail(ctx, token.Email)
		assert.NoError(t, err)
		assert.Equal(t, token.Otp, res.Otp)
		assert.True(t, res.Valid(time.Now()))
	})
	t.Run("no token for email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(token.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByEmail(ctx, token.Email)
		assert.ErrorIs(t, err, errorvalues.ErrOtpNotFound)
	})
}

func TestDeleteResetTokensByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewResetTokensRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM password_reset_tokens WHERE email = $1;`)
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("reader@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		err := repo.DeleteByEmail(ctx, "reader@example.com")
		assert.NoError(t, err)
	})
	t.Run("nothing to delete is fine", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("ghost@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.DeleteByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
	})
}

func TestMarkResetTokenUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewResetTokensRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE password_reset_tokens SET used = TRUE WHERE id = $1;`)
	t.Run("marked", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkUsed(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("unexist token", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.MarkUsed(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrOtpNotFound)
	})
}
