package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/limbo/bookwise/pkg/httputil"
)

type AddToLibraryRequest struct {
	BookID        string `json:"book_id"`
	Status        string `json:"status"`
	IsFavorite    bool   `json:"is_favorite"`
	IsRecommended bool   `json:"is_recommended"`
}

type UpdateReadingStatusRequest struct {
	Status string `json:"status"`
}

type UpdateProgressRequest struct {
	BookID             string `json:"book_id"`
	CurrentKeyPointID  *int64 `json:"current_key_point_id"`
	CompletedKeyPoints int    `json:"completed_key_points"`
	ProgressPercentage int    `json:"progress_percentage"`
}

type SetFlagRequest struct {
	Value bool `json:"value"`
}

type AddReadingTimeRequest struct {
	Minutes int `json:"minutes"`
}

type GetLibraryResponse struct {
	UserID string             `json:"uid"`
	Books  []*entity.UserBook `json:"books"`
}

func (s *Server) AddToLibrary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add to library error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddToLibraryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add to library error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		logger.Error("add to library error: invalid book id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ub, err := s.libraryService.AddToLibrary(ctx, uid, &service.AddToLibraryRequest{
		BookID:        bookID,
		Status:        req.Status,
		IsFavorite:    req.IsFavorite,
		IsRecommended: req.IsRecommended,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidReadingStatus):
			logger.Error("add to library error: unknown reading status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown reading status", nil)
		case errors.Is(err, errorvalues.ErrBookInLibrary):
			logger.Error("add to library error: book already in library")
			httputil.WriteErrorResponse(w, http.StatusConflict, "book already in library", nil)
		case errors.Is(err, errorvalues.ErrBookNotFound):
			logger.Error("add to library error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("add to library error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("add to library error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding book", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ub)
	logger.Info("book added to library")
}

func (s *Server) GetLibrary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get library error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.libraryService.GetLibrary(ctx, uid)
	if err != nil {
		logger.Error("get library error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting library", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLibraryResponse{UserID: uid.String(), Books: books})
	logger.Info("library provided")
}

func (s *Server) GetLibraryByStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get library error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.libraryService.GetByStatus(ctx, uid, r.PathValue("status"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidReadingStatus) {
			logger.Error("get library error: unknown reading status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown reading status", nil)
			return
		}
		logger.Error("get library error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting library", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLibraryResponse{UserID: uid.String(), Books: books})
	logger.Info("library provided")
}

func (s *Server) listHandler(name string, list func(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := GetUIDFromContext(r)
		if err != nil {
			logger.Error(name + " error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		books, err := list(ctx, uid)
		if err != nil {
			logger.Error(name+" error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting books list", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, GetLibraryResponse{UserID: uid.String(), Books: books})
		logger.Info(name + " provided")
	}
}

func (s *Server) GetFavorites(w http.ResponseWriter, r *http.Request) {
	s.listHandler("favorites", s.libraryService.GetFavorites)(w, r)
}

func (s *Server) GetRecommended(w http.ResponseWriter, r *http.Request) {
	s.listHandler("recommended", s.libraryService.GetRecommended)(w, r)
}

func (s *Server) GetCurrentlyReading(w http.ResponseWriter, r *http.Request) {
	s.listHandler("currently reading", s.libraryService.GetCurrentlyReading)(w, r)
}

func (s *Server) GetInProgress(w http.ResponseWriter, r *http.Request) {
	s.listHandler("in progress", s.libraryService.GetInProgress)(w, r)
}

func (s *Server) UpdateReadingStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid library entry id in path value", nil)
		return
	}
	var req UpdateReadingStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ub, err := s.libraryService.UpdateStatus(ctx, uid, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidReadingStatus):
			logger.Error("update status error: unknown reading status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown reading status", nil)
		case errors.Is(err, errorvalues.ErrUserBookNotFound):
			logger.Error("update status error: unexist library entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "library entry doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update status error: entry has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "library entry doesn't exist", nil)
		default:
			logger.Error("update status error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating status", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ub)
	logger.Info("reading status updated")
}

func (s *Server) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProgressRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		logger.Error("update progress error: invalid book id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ub, err := s.libraryService.UpdateProgress(ctx, uid, &service.UpdateProgressRequest{
		BookID:             bookID,
		CurrentKeyPointID:  req.CurrentKeyPointID,
		CompletedKeyPoints: req.CompletedKeyPoints,
		ProgressPercentage: req.ProgressPercentage,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidProgress):
			logger.Error("update progress error: progress out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "progress out of range", nil)
		case errors.Is(err, errorvalues.ErrUserBookNotFound):
			logger.Error("update progress error: book not in library")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book is not in library", nil)
		default:
			logger.Error("update progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ub)
	logger.Info("progress updated")
}

func (s *Server) SetFavorite(w http.ResponseWriter, r *http.Request) {
	s.setFlagHandler("set favorite", s.libraryService.SetFavorite)(w, r)
}

func (s *Server) SetRecommended(w http.ResponseWriter, r *http.Request) {
	s.setFlagHandler("set recommended", s.libraryService.SetRecommended)(w, r)
}

func (s *Server) setFlagHandler(name string, set func(ctx context.Context, uid, bookID uuid.UUID, value bool) (*entity.UserBook, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := GetUIDFromContext(r)
		if err != nil {
			logger.Error(name + " error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		bookID, err := uuid.Parse(r.PathValue("bookID"))
		if err != nil {
			logger.Error(name + " error: invalid book id in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
			return
		}
		var req SetFlagRequest
		defer r.Body.Close()
		err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error(name + " error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		ub, err := set(ctx, uid, bookID, req.Value)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrBookNotFound):
				logger.Error(name + " error: unexist book")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
			case errors.Is(err, errorvalues.ErrUserNotFound):
				logger.Error(name + " error: unexist user")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			default:
				logger.Error(name+" error: service error", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting flag", nil)
			}
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, ub)
		logger.Info(name + " done")
	}
}

func (s *Server) AddReadingTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add reading time error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bookID, err := uuid.Parse(r.PathValue("bookID"))
	if err != nil {
		logger.Error("add reading time error: invalid book id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	var req AddReadingTimeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Minutes <= 0 {
		logger.Error("add reading time error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "minutes must be a positive number", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = s.libraryService.AddReadingTime(ctx, uid, bookID, req.Minutes); err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			logger.Error("add reading time error: book not in library")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book is not in library", nil)
			return
		}
		logger.Error("add reading time error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding reading time", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"added_minutes": req.Minutes})
	logger.Info("reading time added")
}

func (s *Server) RemoveFromLibrary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("remove from library error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bookID, err := uuid.Parse(r.PathValue("bookID"))
	if err != nil {
		logger.Error("remove from library error: invalid book id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = s.libraryService.RemoveFromLibrary(ctx, uid, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			logger.Error("remove from library error: book not in library")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book is not in library", nil)
			return
		}
		logger.Error("remove from library error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing book", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("book removed from library")
}

func (s *Server) GetLibraryStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get library stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.libraryService.GetLibraryStats(ctx, uid)
	if err != nil {
		logger.Error("get library stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting library stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("library stats provided")
}
