package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/limbo/bookwise/pkg/httputil"
)

type SetWeeklyGoalRequest struct {
	GoalBooks int `json:"goal_books"`
}

type WeeklyGoalResponse struct {
	Goal       *entity.WeeklyGoal `json:"goal"`
	Percentage int                `json:"percentage"`
}

func (s *Server) SetWeeklyGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set weekly goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetWeeklyGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set weekly goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.SetWeeklyGoal(ctx, uid, req.GoalBooks)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidGoal):
			logger.Error("set weekly goal error: negative goal")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "goal must be non-negative", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("set weekly goal error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("set weekly goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeeklyGoalResponse{
		Goal:       goal,
		Percentage: goal.ProgressPercentage(),
	})
	logger.Info("weekly goal set")
}

func (s *Server) GetWeeklyGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get weekly goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.GetWeeklyGoal(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get weekly goal error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get weekly goal error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeeklyGoalResponse{
		Goal:       goal,
		Percentage: goal.ProgressPercentage(),
	})
	logger.Info("weekly goal provided")
}
