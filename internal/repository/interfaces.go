package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/bookwise/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates profile fields (full name, bio, country, avatar)
	UpdateProfile(ctx context.Context, user *entity.User) error
	// Updates theme preference
	UpdateTheme(ctx context.Context, uid uuid.UUID, theme entity.ThemePreference) error
	// Updates notification toggles
	UpdateNotifications(ctx context.Context, uid uuid.UUID, s entity.NotificationSettings) error
	// Replaces password hash. Used by the OTP reset flow
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	// Reads the weekly goal fields of the users row
	GetWeeklyGoal(ctx context.Context, uid uuid.UUID) (*entity.WeeklyGoal, error)
	// Writes the weekly goal fields back
	SaveWeeklyGoal(ctx context.Context, goal *entity.WeeklyGoal) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type BooksRepositoryI interface {
	// Lists the whole catalog without key points
	GetAll(ctx context.Context) ([]*entity.Book, error)
	// Searches book with given id, key points attached in order
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	// Lists books of one category
	GetByCategory(ctx context.Context, category string) ([]*entity.Book, error)
	// Lists books with given catalog status
	GetByStatus(ctx context.Context, status entity.BookStatus) ([]*entity.Book, error)
	// Inspects if book exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserBooksRepositoryI interface {
	// Creates new user-book relationship. Returns generated id
	Create(ctx context.Context, ub *entity.UserBook) (uuid.UUID, error)
	// Searches relationship by its own id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UserBook, error)
	// Searches relationship by the (user, book) pair
	GetByUserAndBook(ctx context.Context, uid, bookID uuid.UUID) (*entity.UserBook, error)
	// Inspects if relationship exists for the pair
	ExistsByUserAndBook(ctx context.Context, uid, bookID uuid.UUID) (bool, error)
	// Lists whole library of user
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	// Lists library filtered by reading status
	GetByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.ReadingStatus) ([]*entity.UserBook, error)
	// Lists favorited relationships
	GetFavorites(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	// Lists recommended relationships
	GetRecommended(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	// Lists READING relationships ordered by last_read_at descending
	GetCurrentlyReading(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	// Lists READING relationships with progress > 0
	GetInProgress(ctx context.Context, uid uuid.UUID) ([]*entity.UserBook, error)
	// Counts COMPLETED relationships of user
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
	// Writes all mutable fields of relationship back
	Update(ctx context.Context, ub *entity.UserBook) error
	// Hard-deletes relationship
	Delete(ctx context.Context, id uuid.UUID) error
}

type MilestonesRepositoryI interface {
	// Searches milestone row of user
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Milestone, error)
	// Creates milestone row with zeroed counters
	Create(ctx context.Context, m *entity.Milestone) (uuid.UUID, error)
	// Writes counters and last completion date back
	Update(ctx context.Context, m *entity.Milestone) error
}

type FriendRequestsRepositoryI interface {
	// Creates PENDING request. Returns generated id
	Create(ctx context.Context, fr *entity.FriendRequest) (uuid.UUID, error)
	// Searches request by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)
	// Searches any record between the unordered pair of users
	FindBetween(ctx context.Context, a, b uuid.UUID) (*entity.FriendRequest, error)
	// Sets status and accepted_at
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendshipStatus, acceptedAt *time.Time) error
	// Hard-deletes request (unfriend)
	Delete(ctx context.Context, id uuid.UUID) error
	// Lists ACCEPTED edges involving user
	GetAcceptedByUser(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
	// Lists PENDING requests received by user
	GetPendingReceived(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
	// Lists PENDING requests sent by user
	GetPendingSent(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
}

type ResetTokensRepositoryI interface {
	// Drops all tokens of email so only one OTP is active
	DeleteByEmail(ctx context.Context, email string) error
	// Creates new token
	Create(ctx context.Context, t *entity.PasswordResetToken) error
	// Returns latest token of email
	GetByEmail(ctx context.Context, email string) (*entity.PasswordResetToken, error)
	// Marks token as redeemed
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
