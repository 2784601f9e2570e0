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

type MilestonesService struct {
	repo      repository.MilestonesRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewMilestonesService(milestonesRepo repository.MilestonesRepositoryI, usersRepo repository.UsersRepositoryI) *MilestonesService {
	if milestonesRepo == nil || usersRepo == nil {
		log.Fatal("on milestones service provided nil repos")
	}
	return &MilestonesService{
		repo:      milestonesRepo,
		usersRepo: usersRepo,
	}
}

func (ms *MilestonesService) GetOrCreateMilestone(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error) {
	m, err := ms.repo.GetByUserID(ctx, uid)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, errorvalues.ErrMilestoneNotFound) {
		return nil, errors.New("milestones repository error: " + err.Error())
	}
	// First milestone operation for this user: start with zeroed counters
	if _, err = ms.usersRepo.FindByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	m = &entity.Milestone{UserID: uid}
	id, err := ms.repo.Create(ctx, m)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("creating milestone error: " + err.Error())
	}
	m.ID = id
	return m, nil
}

// IncrementCompletedBooks records a completion event: booksCompleted always
// grows, the streak advances at most once per calendar day.
func (ms *MilestonesService) IncrementCompletedBooks(ctx context.Context, uid uuid.UUID) error {
	m, err := ms.GetOrCreateMilestone(ctx, uid)
	if err != nil {
		return err
	}
	m.BooksCompleted++
	advanceStreak(m, time.Now())
	if err = ms.repo.Update(ctx, m); err != nil {
		return errors.New("milestones repository error: " + err.Error())
	}
	return nil
}

func (ms *MilestonesService) AddReadingTime(ctx context.Context, uid uuid.UUID, minutes int) error {
	m, err := ms.GetOrCreateMilestone(ctx, uid)
	if err != nil {
		return err
	}
	m.TotalReadingTimeMinutes += minutes
	if err = ms.repo.Update(ctx, m); err != nil {
		return errors.New("milestones repository error: " + err.Error())
	}
	return nil
}

// CheckAndResetStreak runs the lazy decay: the streak drops to zero the first
// time anyone reads the milestone after a missed day, not when the day ends.
func (ms *MilestonesService) CheckAndResetStreak(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error) {
	m, err := ms.GetOrCreateMilestone(ctx, uid)
	if err != nil {
		return nil, err
	}
	if decayStreak(m, time.Now()) {
		if err = ms.repo.Update(ctx, m); err != nil {
			return nil, errors.New("milestones repository error: " + err.Error())
		}
	}
	return m, nil
}

func (ms *MilestonesService) GetUserMilestone(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error) {
	return ms.CheckAndResetStreak(ctx, uid)
}
