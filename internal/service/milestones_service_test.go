package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository/mocks"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateMilestone(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	milestonesRepo := mocks.NewMockMilestonesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewMilestonesService(milestonesRepo, usersRepo)
	uid := uuid.New()
	mid := uuid.New()
	ctx := context.Background()
	t.Run("existing milestone returned as is", func(t *testing.T) {
		existing := &entity.Milestone{ID: mid, UserID: uid, DailyStreak: 2, BooksCompleted: 5}
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(existing, nil)
		m, err := serv.GetOrCreateMilestone(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, existing, m)
	})
	t.Run("missing milestone created lazily", func(t *testing.T) {
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errorvalues.ErrMilestoneNotFound)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
		milestonesRepo.EXPECT().Create(gomock.Any(), &entity.Milestone{UserID: uid}).Return(mid, nil)
		m, err := serv.GetOrCreateMilestone(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, mid, m.ID)
		assert.Zero(t, m.DailyStreak)
		assert.Zero(t, m.BooksCompleted)
	})
	t.Run("unknown user", func(t *testing.T) {
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errorvalues.ErrMilestoneNotFound)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.GetOrCreateMilestone(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestIncrementCompletedBooks(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	milestonesRepo := mocks.NewMockMilestonesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewMilestonesService(milestonesRepo, usersRepo)
	uid := uuid.New()
	mid := uuid.New()
	ctx := context.Background()
	t.Run("first completion of the day advances streak", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
			ID:                 mid,
			UserID:             uid,
			DailyStreak:        2,
			BooksCompleted:     5,
			LastCompletionDate: &yesterday,
		}, nil)
		milestonesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *entity.Milestone) error {
				assert.Equal(t, 6, m.BooksCompleted)
				assert.Equal(t, 3, m.DailyStreak)
				return nil
			})
		err := serv.IncrementCompletedBooks(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("second completion same day counts book but not streak", func(t *testing.T) {
		today := time.Now()
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
			ID:                 mid,
			UserID:             uid,
			DailyStreak:        3,
			BooksCompleted:     6,
			LastCompletionDate: &today,
		}, nil)
		milestonesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *entity.Milestone) error {
				assert.Equal(t, 7, m.BooksCompleted)
				assert.Equal(t, 3, m.DailyStreak)
				return nil
			})
		err := serv.IncrementCompletedBooks(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("gap restarts streak at one", func(t *testing.T) {
		lastWeek := time.Now().AddDate(0, 0, -6)
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
			ID:                 mid,
			UserID:             uid,
			DailyStreak:        14,
			BooksCompleted:     20,
			LastCompletionDate: &lastWeek,
		}, nil)
		milestonesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *entity.Milestone) error {
				assert.Equal(t, 21, m.BooksCompleted)
				assert.Equal(t, 1, m.DailyStreak)
				return nil
			})
		err := serv.IncrementCompletedBooks(ctx, uid)
		assert.NoError(t, err)
	})
}

func TestCheckAndResetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	milestonesRepo := mocks.NewMockMilestonesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewMilestonesService(milestonesRepo, usersRepo)
	uid := uuid.New()
	mid := uuid.New()
	ctx := context.Background()
	t.Run("live streak untouched, no write", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
			ID:                 mid,
			UserID:             uid,
			DailyStreak:        4,
			LastCompletionDate: &yesterday,
		}, nil)
		m, err := serv.CheckAndResetStreak(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 4, m.DailyStreak)
	})
	t.Run("stale streak zeroed and persisted", func(t *testing.T) {
		threeDaysAgo := time.Now().AddDate(0, 0, -3)
		milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
			ID:                 mid,
			UserID:             uid,
			DailyStreak:        4,
			LastCompletionDate: &threeDaysAgo,
		}, nil)
		milestonesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *entity.Milestone) error {
				assert.Equal(t, 0, m.DailyStreak)
				return nil
			})
		m, err := serv.CheckAndResetStreak(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 0, m.DailyStreak)
	})
}

func TestAddReadingTime(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	milestonesRepo := mocks.NewMockMilestonesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	serv := service.NewMilestonesService(milestonesRepo, usersRepo)
	uid := uuid.New()
	ctx := context.Background()
	milestonesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Milestone{
		ID:                      uuid.New(),
		UserID:                  uid,
		TotalReadingTimeMinutes: 100,
	}, nil)
	milestonesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *entity.Milestone) error {
			assert.Equal(t, 130, m.TotalReadingTimeMinutes)
			return nil
		})
	err := serv.AddReadingTime(ctx, uid, 30)
	assert.NoError(t, err)
}
