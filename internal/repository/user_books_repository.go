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

type UserBooksRepository struct {
	conn PgConnection
}

func NewUserBooksRepo(cfg DBConfig) *UserBooksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for userBooksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userBooksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UserBooksRepository{
		conn: pool,
	}
}

func NewUserBooksRepoWithConn(conn PgConnection) *UserBooksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userBooksRepo: " + err.Error())
	}
	return &UserBooksRepository{
		conn: conn,
	}
}

const userBookColumns = `id, user_id, book_id, status, current_key_point_id, completed_key_points,
		progress_percentage, is_favorite, is_recommended, started_at, completed_at, last_read_at, created_at, updated_at`

func (ubr *UserBooksRepository) Create(ctx context.Context, ub *entity.UserBook) (uuid.UUID, error) {
	var id uuid.UUID
	row := ubr.conn.QueryRow(ctx, `INSERT INTO user_books (user_id, book_id, status, current_key_point_id,
		completed_key_points, progress_percentage, is_favorite, is_recommended, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		ub.UserID,
		ub.BookID,
		ub.Status,
		ub.CurrentKeyPointID,
		ub.CompletedKeyPoints,
		ub.ProgressPercentage,
		ub.IsFavorite,
		ub.IsRecommended,
		ub.StartedAt,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (user_id, book_id)
			case "23505":
				return uuid.UUID{}, errorvalues.ErrBookInLibrary
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating user book db error: " + err.Error())
	}
	return id, nil
}

func (ubr *UserBooksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserBook, error) {
	row := ubr.conn.QueryRow(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE id = $1;`, id)
	return scanUserBook(row)
}

func (ubr *UserBooksRepository) GetByUserAndBook(ctx context.Context, uid, bookID uuid.UUID) (*entity.UserBook, error) {
	row := ubr.conn.QueryRow(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND book_id = $2;`, uid, bookID)
	return scanUserBook(row)
}

func scanUserBook(row pgx.Row) (*entity.UserBook, error) {
	var ub entity.UserBook
	err := row.Scan(&ub.ID, &ub.UserID, &ub.BookID, &ub.Status, &ub.CurrentKeyPointID, &ub.CompletedKeyPoints,
		&ub.ProgressPercentage, &ub.IsFavorite, &ub.IsRecommended, &ub.StartedAt, &ub.CompletedAt,
		&ub.LastReadAt, &ub.CreatedAt, &ub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserBookNotFound
		}
		return nil, errors.New("searching user book error: " + err.Error())
	}
	return &ub, nil
}

func (ubr *UserBooksRepository) ExistsByUserAndBook(ctx context.Context, uid, bookID uuid.UUID) (bool, error) {
	var exists bool
	row := ubr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM user_books WHERE user_id = $1 AND book_id = $2);`, uid, bookID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if user book exists error: " + err.Error())
	}
	return exists, nil
}

func (ubr *UserBooksRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting user library error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) GetByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.ReadingStatus) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND status = $2;`, uid, status)
	if err != nil {
		return nil, errors.New("getting user books by status error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) GetFavorites(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND is_favorite = TRUE;`, uid)
	if err != nil {
		return nil, errors.New("getting favorites error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) GetRecommended(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND is_recommended = TRUE;`, uid)
	if err != nil {
		return nil, errors.New("getting recommended error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) GetCurrentlyReading(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND status = $2 ORDER BY last_read_at DESC NULLS LAST;`,
		uid, entity.StatusReading)
	if err != nil {
		return nil, errors.New("getting currently reading error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) GetInProgress(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	rows, err := ubr.conn.Query(ctx, `SELECT `+userBookColumns+` FROM user_books WHERE user_id = $1 AND status = $2 AND progress_percentage > 0 ORDER BY last_read_at DESC NULLS LAST;`,
		uid, entity.StatusReading)
	if err != nil {
		return nil, errors.New("getting books in progress error: " + err.Error())
	}
	return scanUserBooks(rows)
}

func (ubr *UserBooksRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := ubr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM user_books WHERE user_id = $1 AND status = $2;`, uid, entity.StatusCompleted)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completed books: " + err.Error())
	}
	return count, nil
}

func (ubr *UserBooksRepository) Update(ctx context.Context, ub *entity.UserBook) error {
	ct, err := ubr.conn.Exec(ctx, `UPDATE user_books SET status = $1, current_key_point_id = $2, completed_key_points = $3,
		progress_percentage = $4, is_favorite = $5, is_recommended = $6, started_at = $7, completed_at = $8,
		last_read_at = $9, updated_at = NOW() WHERE id = $10;`,
		ub.Status,
		ub.CurrentKeyPointID,
		ub.CompletedKeyPoints,
		ub.ProgressPercentage,
		ub.IsFavorite,
		ub.IsRecommended,
		ub.StartedAt,
		ub.CompletedAt,
		ub.LastReadAt,
		ub.ID,
	)
	if err != nil {
		return errors.New("updating user book error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserBookNotFound
	}
	return nil
}

func (ubr *UserBooksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ubr.conn.Exec(ctx, `DELETE FROM user_books WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting user book error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserBookNotFound
	}
	return nil
}

func scanUserBooks(rows pgx.Rows) ([]*entity.UserBook, error) {
	defer rows.Close()
	result := make([]*entity.UserBook, 0)
	for rows.Next() {
		ub := entity.UserBook{}
		err := rows.Scan(&ub.ID, &ub.UserID, &ub.BookID, &ub.Status, &ub.CurrentKeyPointID, &ub.CompletedKeyPoints,
			&ub.ProgressPercentage, &ub.IsFavorite, &ub.IsRecommended, &ub.StartedAt, &ub.CompletedAt,
			&ub.LastReadAt, &ub.CreatedAt, &ub.UpdatedAt)
		if err != nil {
			return nil, errors.New("user book row parsing error: " + err.Error())
		}
		result = append(result, &ub)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user book rows error: " + rows.Err().Error())
	}
	return result, nil
}
