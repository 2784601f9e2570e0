package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/bookwise/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=255"`
	FullName string `validate:"required,human_name,min=2,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// Nil fields are left untouched
type UpdateProfileRequest struct {
	FullName  *string
	Bio       *string
	Country   *string
	AvatarURL *string
}

// Nil fields are left untouched
type NotificationSettingsRequest struct {
	StreakEnabled        *bool
	DailyReminderEnabled *bool
	NewReleasesEnabled   *bool
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	UpdateTheme(ctx context.Context, id uuid.UUID, theme string) (*entity.User, error)
	UpdateNotifications(ctx context.Context, id uuid.UUID, req *NotificationSettingsRequest) (*entity.User, error)
	// Generates a 4-digit OTP, stores it with a TTL and hands the email off to the dispatcher
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type BooksServiceI interface {
	GetAllBooks(ctx context.Context) ([]*entity.Book, error)
	// Returns book with its key points in order
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	GetBooksByCategory(ctx context.Context, category string) ([]*entity.Book, error)
	GetBooksByStatus(ctx context.Context, status string) ([]*entity.Book, error)
}

type AddToLibraryRequest struct {
	BookID        uuid.UUID
	Status        string
	IsFavorite    bool
	IsRecommended bool
}

type UpdateProgressRequest struct {
	BookID             uuid.UUID
	CurrentKeyPointID  *int64
	CompletedKeyPoints int `validate:"gte=0"`
	ProgressPercentage int `validate:"gte=0,lte=100"`
}

// LibraryStats backs the library dashboard: full book lists per shelf, the
// frontend derives counts itself.
type LibraryStats struct {
	CurrentlyReading []*entity.UserBook `json:"currently_reading"`
	SavedForLater    []*entity.UserBook `json:"saved_for_later"`
	CompletedBooks   []*entity.UserBook `json:"completed_books"`
}

type ProfileStats struct {
	FavoriteBooks           []*entity.UserBook `json:"favorite_books"`
	RecommendedBooks        []*entity.UserBook `json:"recommended_books"`
	TotalBooksCompleted     int                `json:"total_books_completed"`
	CurrentStreak           int                `json:"current_streak"`
	TotalReadingTimeMinutes int                `json:"total_reading_time_minutes"`
}

type LibraryServiceI interface {
	// Creates the (user, book) relationship. Fails if it already exists
	AddToLibrary(ctx context.Context, uid uuid.UUID, req *AddToLibraryRequest) (*entity.UserBook, error)
	// Sets reading status by user-book id, progress fields stay untouched
	UpdateStatus(ctx context.Context, uid, userBookID uuid.UUID, status string) (*entity.UserBook, error)
	// Get-or-create: a book can be favorited without ever being started
	SetFavorite(ctx context.Context, uid, bookID uuid.UUID, value bool) (*entity.UserBook, error)
	// Get-or-create, same semantics as SetFavorite
	SetRecommended(ctx context.Context, uid, bookID uuid.UUID, value bool) (*entity.UserBook, error)
	// Writes progress fields. Crossing 100% completes the book and fires
	// milestone and weekly goal side effects once
	UpdateProgress(ctx context.Context, uid uuid.UUID, req *UpdateProgressRequest) (*entity.UserBook, error)
	// Hard-deletes the relationship
	RemoveFromLibrary(ctx context.Context, uid, bookID uuid.UUID) error
	// Validates the book is in the library, then adds minutes to the milestone total
	AddReadingTime(ctx context.Context, uid, bookID uuid.UUID, minutes int) error
	GetLibrary(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	GetByStatus(ctx context.Context, uid uuid.UUID, status string) ([]*entity.UserBook, error)
	GetFavorites(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	GetRecommended(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	GetCurrentlyReading(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	GetInProgress(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	GetLibraryStats(ctx context.Context, uid uuid.UUID) (*LibraryStats, error)
	GetProfileStats(ctx context.Context, uid uuid.UUID) (*ProfileStats, error)
}

type MilestonesServiceI interface {
	// Completion event: bumps booksCompleted and advances the daily streak
	IncrementCompletedBooks(ctx context.Context, uid uuid.UUID) error
	AddReadingTime(ctx context.Context, uid uuid.UUID, minutes int) error
	GetOrCreateMilestone(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error)
	// Lazy decay check, then get. Call this on read paths
	GetUserMilestone(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error)
	CheckAndResetStreak(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error)
}

type WeeklyGoalServiceI interface {
	// Setting a goal always restarts the window and zeroes progress
	SetWeeklyGoal(ctx context.Context, uid uuid.UUID, goalBooks int) (*entity.WeeklyGoal, error)
	// Rolls the window first if it expired
	GetWeeklyGoal(ctx context.Context, uid uuid.UUID) (*entity.WeeklyGoal, error)
	// Completion event hook. Rolls the window before counting so the
	// completion lands in the current window
	IncrementProgress(ctx context.Context, uid uuid.UUID) error
}

type FriendsServiceI interface {
	SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*entity.FriendRequest, error)
	// Receiver-only; action is ACCEPT or DECLINE
	Respond(ctx context.Context, uid, requestID uuid.UUID, action string) (*entity.FriendRequest, error)
	// Deletes the ACCEPTED edge so the pair can re-request later
	Unfriend(ctx context.Context, uid, friendID uuid.UUID) error
	ListFriends(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
	ListReceived(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
	ListSent(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
}

// Dispatcher hands outbound notifications (OTP emails) off to whatever
// transport runs out of process.
type Dispatcher interface {
	SendOtpEmail(ctx context.Context, email, otp string) error
}
