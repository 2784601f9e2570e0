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

// LibraryService owns the per-(user, book) relationship and triggers the
// milestone and weekly goal engines when a book crosses 100%.
type LibraryService struct {
	userBooksRepo repository.UserBooksRepositoryI
	booksRepo     repository.BooksRepositoryI
	usersRepo     repository.UsersRepositoryI
	milestones    MilestonesServiceI
	goals         WeeklyGoalServiceI
}

func NewLibraryService(
	userBooksRepo repository.UserBooksRepositoryI,
	booksRepo repository.BooksRepositoryI,
	usersRepo repository.UsersRepositoryI,
	milestones MilestonesServiceI,
	goals WeeklyGoalServiceI,
) *LibraryService {
	if userBooksRepo == nil || booksRepo == nil || usersRepo == nil || milestones == nil || goals == nil {
		log.Fatal("on library service provided nil dependencies")
	}
	return &LibraryService{
		userBooksRepo: userBooksRepo,
		booksRepo:     booksRepo,
		usersRepo:     usersRepo,
		milestones:    milestones,
		goals:         goals,
	}
}

func (ls *LibraryService) AddToLibrary(ctx context.Context, uid uuid.UUID, req *AddToLibraryRequest) (*entity.UserBook, error) {
	status, ok := entity.ParseReadingStatus(req.Status)
	if !ok {
		return nil, errorvalues.ErrInvalidReadingStatus
	}
	exists, err := ls.userBooksRepo.ExistsByUserAndBook(ctx, uid, req.BookID)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	if exists {
		return nil, errorvalues.ErrBookInLibrary
	}
	if err = ls.checkUserAndBook(ctx, uid, req.BookID); err != nil {
		return nil, err
	}
	ub := &entity.UserBook{
		UserID:        uid,
		BookID:        req.BookID,
		Status:        status,
		IsFavorite:    req.IsFavorite,
		IsRecommended: req.IsRecommended,
	}
	if status == entity.StatusReading {
		now := time.Now()
		ub.StartedAt = &now
	}
	if _, err = ls.userBooksRepo.Create(ctx, ub); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookInLibrary), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("user books repository error: " + err.Error())
	}
	created, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, req.BookID)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return created, nil
}

func (ls *LibraryService) UpdateStatus(ctx context.Context, uid, userBookID uuid.UUID, status string) (*entity.UserBook, error) {
	newStatus, ok := entity.ParseReadingStatus(status)
	if !ok {
		return nil, errorvalues.ErrInvalidReadingStatus
	}
	ub, err := ls.userBooksRepo.GetByID(ctx, userBookID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			return nil, err
		}
		return nil, errors.New("user books repository error: " + err.Error())
	}
	if ub.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	ub.Status = newStatus
	now := time.Now()
	if newStatus == entity.StatusReading && ub.StartedAt == nil {
		ub.StartedAt = &now
	}
	if newStatus == entity.StatusCompleted && ub.CompletedAt == nil {
		ub.CompletedAt = &now
	}
	if err = ls.userBooksRepo.Update(ctx, ub); err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return ub, nil
}

func (ls *LibraryService) SetFavorite(ctx context.Context, uid, bookID uuid.UUID, value bool) (*entity.UserBook, error) {
	ub, err := ls.getOrCreate(ctx, uid, bookID)
	if err != nil {
		return nil, err
	}
	ub.IsFavorite = value
	if err = ls.userBooksRepo.Update(ctx, ub); err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return ub, nil
}

func (ls *LibraryService) SetRecommended(ctx context.Context, uid, bookID uuid.UUID, value bool) (*entity.UserBook, error) {
	ub, err := ls.getOrCreate(ctx, uid, bookID)
	if err != nil {
		return nil, err
	}
	ub.IsRecommended = value
	if err = ls.userBooksRepo.Update(ctx, ub); err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return ub, nil
}

// getOrCreate backs the favorite/recommend toggles: flagging a book the user
// never interacted with silently creates a NOT_STARTED relationship first.
func (ls *LibraryService) getOrCreate(ctx context.Context, uid, bookID uuid.UUID) (*entity.UserBook, error) {
	ub, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, bookID)
	if err == nil {
		return ub, nil
	}
	if !errors.Is(err, errorvalues.ErrUserBookNotFound) {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	if err = ls.checkUserAndBook(ctx, uid, bookID); err != nil {
		return nil, err
	}
	ub = &entity.UserBook{
		UserID: uid,
		BookID: bookID,
		Status: entity.StatusNotStarted,
	}
	if _, err = ls.userBooksRepo.Create(ctx, ub); err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	created, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, bookID)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return created, nil
}

func (ls *LibraryService) checkUserAndBook(ctx context.Context, uid, bookID uuid.UUID) error {
	if _, err := ls.usersRepo.FindByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	exists, err := ls.booksRepo.Exists(ctx, bookID)
	if err != nil {
		return errors.New("books repository error: " + err.Error())
	}
	if !exists {
		return errorvalues.ErrBookNotFound
	}
	return nil
}

// UpdateProgress writes the progress fields verbatim. Crossing 100% forces
// COMPLETED; the milestone and weekly goal events fire only when the
// relationship was not already completed, so repeated 100% writes stay
// side-effect free.
func (ls *LibraryService) UpdateProgress(ctx context.Context, uid uuid.UUID, req *UpdateProgressRequest) (*entity.UserBook, error) {
	if req.ProgressPercentage < 0 || req.ProgressPercentage > 100 || req.CompletedKeyPoints < 0 {
		return nil, errorvalues.ErrInvalidProgress
	}
	ub, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, req.BookID)
	if err != nil {
		// Progress cannot create a relationship, unlike favorite/recommend
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			return nil, err
		}
		return nil, errors.New("user books repository error: " + err.Error())
	}
	now := time.Now()
	ub.CurrentKeyPointID = req.CurrentKeyPointID
	ub.CompletedKeyPoints = req.CompletedKeyPoints
	ub.ProgressPercentage = req.ProgressPercentage
	ub.LastReadAt = &now

	wasCompleted := ub.Status == entity.StatusCompleted
	completing := req.ProgressPercentage >= 100
	if completing {
		ub.Status = entity.StatusCompleted
		if ub.CompletedAt == nil {
			ub.CompletedAt = &now
		}
	}
	if err = ls.userBooksRepo.Update(ctx, ub); err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	if completing && !wasCompleted {
		if err = ls.milestones.IncrementCompletedBooks(ctx, uid); err != nil {
			return nil, errors.New("milestones service error: " + err.Error())
		}
		if err = ls.goals.IncrementProgress(ctx, uid); err != nil {
			return nil, errors.New("weekly goal service error: " + err.Error())
		}
	}
	return ub, nil
}

func (ls *LibraryService) RemoveFromLibrary(ctx context.Context, uid, bookID uuid.UUID) error {
	ub, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, bookID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			return err
		}
		return errors.New("user books repository error: " + err.Error())
	}
	if err = ls.userBooksRepo.Delete(ctx, ub.ID); err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			return err
		}
		return errors.New("user books repository error: " + err.Error())
	}
	return nil
}

func (ls *LibraryService) AddReadingTime(ctx context.Context, uid, bookID uuid.UUID, minutes int) error {
	if _, err := ls.userBooksRepo.GetByUserAndBook(ctx, uid, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrUserBookNotFound) {
			return err
		}
		return errors.New("user books repository error: " + err.Error())
	}
	return ls.milestones.AddReadingTime(ctx, uid, minutes)
}

func (ls *LibraryService) GetLibrary(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	books, err := ls.userBooksRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetByStatus(ctx context.Context, uid uuid.UUID, status string) ([]*entity.UserBook, error) {
	st, ok := entity.ParseReadingStatus(status)
	if !ok {
		return nil, errorvalues.ErrInvalidReadingStatus
	}
	books, err := ls.userBooksRepo.GetByUserAndStatus(ctx, uid, st)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetFavorites(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	books, err := ls.userBooksRepo.GetFavorites(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetRecommended(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	books, err := ls.userBooksRepo.GetRecommended(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetCurrentlyReading(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	books, err := ls.userBooksRepo.GetCurrentlyReading(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetInProgress(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error) {
	books, err := ls.userBooksRepo.GetInProgress(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return books, nil
}

func (ls *LibraryService) GetLibraryStats(ctx context.Context, uid uuid.UUID) (*LibraryStats, error) {
	reading, err := ls.userBooksRepo.GetByUserAndStatus(ctx, uid, entity.StatusReading)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	saved, err := ls.userBooksRepo.GetByUserAndStatus(ctx, uid, entity.StatusSavedForLater)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	completed, err := ls.userBooksRepo.GetByUserAndStatus(ctx, uid, entity.StatusCompleted)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	return &LibraryStats{
		CurrentlyReading: reading,
		SavedForLater:    saved,
		CompletedBooks:   completed,
	}, nil
}

func (ls *LibraryService) GetProfileStats(ctx context.Context, uid uuid.UUID) (*ProfileStats, error) {
	favorites, err := ls.userBooksRepo.GetFavorites(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	recommended, err := ls.userBooksRepo.GetRecommended(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	completedCount, err := ls.userBooksRepo.CountCompleted(ctx, uid)
	if err != nil {
		return nil, errors.New("user books repository error: " + err.Error())
	}
	milestone, err := ls.milestones.GetUserMilestone(ctx, uid)
	if err != nil {
		return nil, errors.New("milestones service error: " + err.Error())
	}
	return &ProfileStats{
		FavoriteBooks:           favorites,
		RecommendedBooks:        recommended,
		TotalBooksCompleted:     completedCount,
		CurrentStreak:           milestone.DailyStreak,
		TotalReadingTimeMinutes: milestone.TotalReadingTimeMinutes,
	}, nil
}
