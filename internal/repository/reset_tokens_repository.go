package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/cleanup"
	"github.com/limbo/bookwise/pkg/entity"
)

type ResetTokensRepository struct {
	conn PgConnection
}

func NewResetTokensRepo(cfg DBConfig) *ResetTokensRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for resetTokensRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for resetTokensRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ResetTokensRepository{
		conn: pool,
	}
}

func NewResetTokensRepoWithConn(conn PgConnection) *ResetTokensRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for resetTokensRepo: " + err.Error())
	}
	return &ResetTokensRepository{
		conn: conn,
	}
}

func (rtr *ResetTokensRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := rtr.conn.Exec(ctx, `DELETE FROM password_reset_tokens WHERE email = $1;`, email)
	if err != nil {
		return errors.New("deleting reset tokens error: " + err.Error())
	}
	return nil
}

func (rtr *ResetTokensRepository) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	_, err := rtr.conn.Exec(ctx, `INSERT INTO password_reset_tokens (email, otp, expires_at, used) VALUES ($1, $2, $3, $4);`,
		t.Email,
		t.Otp,
		t.ExpiresAt,
		t.Used,
	)
	if err != nil {
		return errors.New("creating reset token error: " + err.Error())
	}
	return nil
}

func (rtr *ResetTokensRepository) GetByEmail(ctx context.Context, email string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	row := rtr.conn.QueryRow(ctx, `SELECT id, email, otp, expires_at, used, created_at FROM password_reset_tokens
		WHERE email = $1 ORDER BY created_at DESC LIMIT 1;`, email)
	err := row.Scan(&t.ID, &t.Email, &t.Otp, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrOtpNotFound
		}
		return nil, errors.New("getting reset token error: " + err.Error())
	}
	return &t, nil
}

func (rtr *ResetTokensRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	ct, err := rtr.conn.Exec(ctx, `UPDATE password_reset_tokens SET used = TRUE WHERE id = $1;`, id)
	if err != nil {
		return errors.New("marking reset token used error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrOtpNotFound
	}
	return nil
}
