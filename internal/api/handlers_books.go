package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/limbo/bookwise/pkg/httputil"
)

type GetBooksResponse struct {
	Books []*entity.Book `json:"books"`
}

func (s *Server) GetBooks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.booksService.GetAllBooks(ctx)
	if err != nil {
		logger.Error("getting books list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting books list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBooksResponse{Books: books})
	logger.Info("books provided")
}

func (s *Server) GetBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	book, err := s.booksService.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			logger.Error("get book error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
			return
		}
		logger.Error("get book error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting book", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, book)
	logger.Info("book provided")
}

func (s *Server) GetBooksByCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	category := r.PathValue("category")
	if category == "" {
		logger.Error("get books by category error: empty category")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "category is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.booksService.GetBooksByCategory(ctx, category)
	if err != nil {
		logger.Error("get books by category error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting books list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBooksResponse{Books: books})
	logger.Info("books provided")
}

func (s *Server) GetBooksByStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.booksService.GetBooksByStatus(ctx, r.PathValue("status"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidBookStatus) {
			logger.Error("get books by status error: unknown status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown book status", nil)
			return
		}
		logger.Error("get books by status error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting books list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetBooksResponse{Books: books})
	logger.Info("books provided")
}
