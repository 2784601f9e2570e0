package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	repomocks "github.com/limbo/bookwise/internal/repository/mocks"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetBook(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockBooksRepositoryI(ctrl)
	serv := service.NewBooksService(repo)
	bid := uuid.New()
	ctx := context.Background()
	t.Run("found with key points", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), bid).Return(&entity.Book{
			ID:    bid,
			Title: "Deep Work",
			KeyPoints: []entity.KeyPoint{
				{ID: 1, BookID: bid, OrderIndex: 1, Title: "Focus"},
			},
		}, nil)
		book, err := serv.GetBook(ctx, bid)
		assert.NoError(t, err)
		assert.Len(t, book.KeyPoints, 1)
	})
	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), bid).Return(nil, errorvalues.ErrBookNotFound)
		_, err := serv.GetBook(ctx, bid)
		assert.ErrorIs(t, err, errorvalues.ErrBookNotFound)
	})
}

func TestGetBooksByStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockBooksRepositoryI(ctrl)
	serv := service.NewBooksService(repo)
	ctx := context.Background()
	t.Run("valid status", func(t *testing.T) {
		repo.EXPECT().GetByStatus(gomock.Any(), entity.BookNewRelease).Return([]*entity.Book{
			{ID: uuid.New(), Status: entity.BookNewRelease},
		}, nil)
		books, err := serv.GetBooksByStatus(ctx, "NEW_RELEASE")
		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := serv.GetBooksByStatus(ctx, "TRENDING")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidBookStatus)
	})
}
