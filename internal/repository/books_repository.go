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

// BooksRepository serves the read-mostly catalog. Writes happen through
// migrations/seeding only, so there is no Create/Update here.
type BooksRepository struct {
	conn PgConnection
}

func NewBooksRepo(cfg DBConfig) *BooksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for booksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for booksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BooksRepository{
		conn: pool,
	}
}

func NewBooksRepoWithConn(conn PgConnection) *BooksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for booksRepo: " + err.Error())
	}
	return &BooksRepository{
		conn: conn,
	}
}

const bookColumns = `id, title, author, category, cover, overview, about_author, status, created_at, updated_at`

func (br *BooksRepository) GetAll(ctx context.Context) ([]*entity.Book, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title;`)
	if err != nil {
		return nil, errors.New("getting books error: " + err.Error())
	}
	return scanBooks(rows)
}

func (br *BooksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var book entity.Book
	row := br.conn.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1;`, id)
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Category, &book.Cover, &book.Overview,
		&book.AboutAuthor, &book.Status, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBookNotFound
		}
		return nil, errors.New("getting book by id error: " + err.Error())
	}
	keyPoints, err := br.getKeyPoints(ctx, id)
	if err != nil {
		return nil, err
	}
	book.KeyPoints = keyPoints
	return &book, nil
}

func (br *BooksRepository) GetByCategory(ctx context.Context, category string) ([]*entity.Book, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE category = $1 ORDER BY title;`, category)
	if err != nil {
		return nil, errors.New("getting books by category error: " + err.Error())
	}
	return scanBooks(rows)
}

func (br *BooksRepository) GetByStatus(ctx context.Context, status entity.BookStatus) ([]*entity.Book, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE status = $1 ORDER BY title;`, status)
	if err != nil {
		return nil, errors.New("getting books by status error: " + err.Error())
	}
	return scanBooks(rows)
}

func (br *BooksRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := br.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if book exists error: " + err.Error())
	}
	return exists, nil
}

func (br *BooksRepository) getKeyPoints(ctx context.Context, bookID uuid.UUID) ([]entity.KeyPoint, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, book_id, order_index, title, summary, estimated_read_time_minutes
		FROM key_points WHERE book_id = $1 ORDER BY order_index;`, bookID)
	if err != nil {
		return nil, errors.New("getting key points error: " + err.Error())
	}
	defer rows.Close()
	keyPoints := make([]entity.KeyPoint, 0)
	for rows.Next() {
		kp := entity.KeyPoint{}
		err = rows.Scan(&kp.ID, &kp.BookID, &kp.OrderIndex, &kp.Title, &kp.Summary, &kp.EstimatedReadTime)
		if err != nil {
			return nil, errors.New("key point row parsing error: " + err.Error())
		}
		keyPoints = append(keyPoints, kp)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected key point rows error: " + rows.Err().Error())
	}
	return keyPoints, nil
}

func scanBooks(rows pgx.Rows) ([]*entity.Book, error) {
	defer rows.Close()
	books := make([]*entity.Book, 0)
	for rows.Next() {
		b := entity.Book{}
		err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Cover, &b.Overview,
			&b.AboutAuthor, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, errors.New("book row parsing error: " + err.Error())
		}
		books = append(books, &b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected book rows error: " + rows.Err().Error())
	}
	return books, nil
}
