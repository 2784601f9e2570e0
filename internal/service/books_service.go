package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
)

// BooksService reads the shared catalog. The catalog is seeded out of band,
// so there are no write paths here.
type BooksService struct {
	repo repository.BooksRepositoryI
}

func NewBooksService(repo repository.BooksRepositoryI) *BooksService {
	if repo == nil {
		log.Fatal("on books service provided nil repo")
	}
	return &BooksService{repo: repo}
}

func (bs *BooksService) GetAllBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := bs.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("books repository error: " + err.Error())
	}
	return books, nil
}

func (bs *BooksService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("books repository error: " + err.Error())
	}
	return book, nil
}

func (bs *BooksService) GetBooksByCategory(ctx context.Context, category string) ([]*entity.Book, error) {
	books, err := bs.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, errors.New("books repository error: " + err.Error())
	}
	return books, nil
}

func (bs *BooksService) GetBooksByStatus(ctx context.Context, status string) ([]*entity.Book, error) {
	st, ok := entity.ParseBookStatus(status)
	if !ok {
		return nil, errorvalues.ErrInvalidBookStatus
	}
	books, err := bs.repo.GetByStatus(ctx, st)
	if err != nil {
		return nil, errors.New("books repository error: " + err.Error())
	}
	return books, nil
}
