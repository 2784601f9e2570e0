package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
)

type WeeklyGoalService struct {
	usersRepo repository.UsersRepositoryI
}

func NewWeeklyGoalService(usersRepo repository.UsersRepositoryI) *WeeklyGoalService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &WeeklyGoalService{
		usersRepo: usersRepo,
	}
}

func (ws *WeeklyGoalService) SetWeeklyGoal(ctx context.Context, uid uuid.UUID, goalBooks int) (*entity.WeeklyGoal, error) {
	if goalBooks < 0 {
		return nil, errorvalues.ErrInvalidGoal
	}
	today := dateOf(time.Now())
	goal := &entity.WeeklyGoal{
		UserID:        uid,
		GoalBooks:     goalBooks,
		Progress:      0,
		WeekStartDate: &today,
	}
	if err := ws.usersRepo.SaveWeeklyGoal(ctx, goal); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return goal, nil
}

func (ws *WeeklyGoalService) GetWeeklyGoal(ctx context.Context, uid uuid.UUID) (*entity.WeeklyGoal, error) {
	goal, err := ws.usersRepo.GetWeeklyGoal(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if rollWindow(goal, time.Now()) {
		if err = ws.usersRepo.SaveWeeklyGoal(ctx, goal); err != nil {
			return nil, errors.New("users repository error: " + err.Error())
		}
	}
	return goal, nil
}

// IncrementProgress counts a completion into the weekly window. The window is
// rolled first so a completion right after the boundary starts the new week
// instead of leaking into the old one.
func (ws *WeeklyGoalService) IncrementProgress(ctx context.Context, uid uuid.UUID) error {
	goal, err := ws.usersRepo.GetWeeklyGoal(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	rollWindow(goal, time.Now())
	goal.Progress++
	if err = ws.usersRepo.SaveWeeklyGoal(ctx, goal); err != nil {
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}
