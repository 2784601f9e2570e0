package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/cleanup"
	"github.com/limbo/bookwise/pkg/entity"
)

type MilestonesRepository struct {
	conn PgConnection
}

func NewMilestonesRepo(cfg DBConfig) *MilestonesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for milestonesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for milestonesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MilestonesRepository{
		conn: pool,
	}
}

func NewMilestonesRepoWithConn(conn PgConnection) *MilestonesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for milestonesRepo: " + err.Error())
	}
	return &MilestonesRepository{
		conn: conn,
	}
}

func (mr *MilestonesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error) {
	var m entity.Milestone
	row := mr.conn.QueryRow(ctx, `SELECT id, user_id, daily_streak, books_completed, total_reading_time_minutes,
		last_completion_date, updated_at FROM milestones WHERE user_id = $1;`, uid)
	err := row.Scan(&m.ID, &m.UserID, &m.DailyStreak, &m.BooksCompleted, &m.TotalReadingTimeMinutes,
		&m.LastCompletionDate, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMilestoneNotFound
		}
		return nil, errors.New("getting milestone error: " + err.Error())
	}
	return &m, nil
}

func (mr *MilestonesRepository) Create(ctx context.Context, m *entity.Milestone) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO milestones (user_id, daily_streak, books_completed, total_reading_time_minutes, last_completion_date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		m.UserID,
		m.DailyStreak,
		m.BooksCompleted,
		m.TotalReadingTimeMinutes,
		m.LastCompletionDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating milestone error: " + err.Error())
	}
	return id, nil
}

func (mr *MilestonesRepository) Update(ctx context.Context, m *entity.Milestone) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE milestones SET daily_streak = $1, books_completed = $2,
		total_reading_time_minutes = $3, last_completion_date = $4, updated_at = NOW() WHERE id = $5;`,
		m.DailyStreak,
		m.BooksCompleted,
		m.TotalReadingTimeMinutes,
		m.LastCompletionDate,
		m.ID,
	)
	if err != nil {
		return errors.New("updating milestone error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMilestoneNotFound
	}
	return nil
}
