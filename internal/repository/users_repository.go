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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (email, full_name, password_hash) VALUES ($1, $2, $3);`,
		user.Email,
		user.FullName,
		user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, email, full_name, password_hash, bio, country, avatar_url, theme,
		streak_notifications_enabled, daily_reminder_enabled, new_releases_enabled, created_at, updated_at
		FROM users WHERE email = $1;`, email)
	return scanUser(row)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, email, full_name, password_hash, bio, country, avatar_url, theme,
		streak_notifications_enabled, daily_reminder_enabled, new_releases_enabled, created_at, updated_at
		FROM users WHERE id = $1;`, uid)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.Bio, &user.Country,
		&user.AvatarURL, &user.Theme, &user.Notifications.StreakEnabled, &user.Notifications.DailyReminderEnabled,
		&user.Notifications.NewReleasesEnabled, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET full_name = $1, bio = $2, country = $3, avatar_url = $4, updated_at = NOW() WHERE id = $5;`,
		user.FullName,
		user.Bio,
		user.Country,
		user.AvatarURL,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateTheme(ctx context.Context, uid uuid.UUID, theme entity.ThemePreference) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET theme = $1, updated_at = NOW() WHERE id = $2;`, theme, uid)
	if err != nil {
		return errors.New("updating theme error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateNotifications(ctx context.Context, uid uuid.UUID, s entity.NotificationSettings) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET streak_notifications_enabled = $1, daily_reminder_enabled = $2,
		new_releases_enabled = $3, updated_at = NOW() WHERE id = $4;`,
		s.StreakEnabled,
		s.DailyReminderEnabled,
		s.NewReleasesEnabled,
		uid,
	)
	if err != nil {
		return errors.New("updating notification settings error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2;`, passwordHash, uid)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) GetWeeklyGoal(ctx context.Context, uid uuid.UUID) (*entity.WeeklyGoal, error) {
	goal := entity.WeeklyGoal{UserID: uid}
	row := ur.conn.QueryRow(ctx, `SELECT weekly_goal_books, weekly_progress, week_start_date FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&goal.GoalBooks, &goal.Progress, &goal.WeekStartDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting weekly goal error: " + err.Error())
	}
	return &goal, nil
}

func (ur *UsersRepository) SaveWeeklyGoal(ctx context.Context, goal *entity.WeeklyGoal) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET weekly_goal_books = $1, weekly_progress = $2, week_start_date = $3, updated_at = NOW() WHERE id = $4;`,
		goal.GoalBooks,
		goal.Progress,
		goal.WeekStartDate,
		goal.UserID,
	)
	if err != nil {
		return errors.New("saving weekly goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
