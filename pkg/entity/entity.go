package entity

import (
	"time"

	"github.com/google/uuid"
)

type ThemePreference string

const (
	ThemeLight ThemePreference = "LIGHT"
	ThemeDark  ThemePreference = "DARK"
)

func ParseThemePreference(s string) (ThemePreference, bool) {
	switch ThemePreference(s) {
	case ThemeLight, ThemeDark:
		return ThemePreference(s), true
	}
	return "", false
}

type NotificationSettings struct {
	StreakEnabled        bool `json:"streak_enabled"`
	DailyReminderEnabled bool `json:"daily_reminder_enabled"`
	NewReleasesEnabled   bool `json:"new_releases_enabled"`
}

type User struct {
	ID            uuid.UUID            `json:"id"`
	Email         string               `json:"email"`
	FullName      string               `json:"full_name"`
	PasswordHash  string               `json:"-"`
	Bio           string               `json:"bio,omitempty"`
	Country       string               `json:"country,omitempty"`
	AvatarURL     string               `json:"avatar_url,omitempty"`
	Theme         ThemePreference      `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type BookStatus string

const (
	BookNewRelease BookStatus = "NEW_RELEASE"
	BookPopular    BookStatus = "POPULAR"
	BookClassic    BookStatus = "CLASSIC"
)

func ParseBookStatus(s string) (BookStatus, bool) {
	switch BookStatus(s) {
	case BookNewRelease, BookPopular, BookClassic:
		return BookStatus(s), true
	}
	return "", false
}

type Book struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	Cover       string     `json:"cover,omitempty"`
	Overview    string     `json:"overview,omitempty"`
	AboutAuthor string     `json:"about_author,omitempty"`
	Status      BookStatus `json:"status"`
	KeyPoints   []KeyPoint `json:"key_points,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type KeyPoint struct {
	ID                int64     `json:"id"`
	BookID            uuid.UUID `json:"book_id"`
	OrderIndex        int       `json:"order_index"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	EstimatedReadTime int       `json:"estimated_read_time_minutes"`
}

type ReadingStatus string

const (
	StatusNotStarted    ReadingStatus = "NOT_STARTED"
	StatusReading       ReadingStatus = "READING"
	StatusSavedForLater ReadingStatus = "SAVED_FOR_LATER"
	StatusCompleted     ReadingStatus = "COMPLETED"
)

func ParseReadingStatus(s string) (ReadingStatus, bool) {
	switch ReadingStatus(s) {
	case StatusNotStarted, StatusReading, StatusSavedForLater, StatusCompleted:
		return ReadingStatus(s), true
	}
	return "", false
}

// UserBook is the per-(user, book) relationship: reading status, progress,
// favorite/recommendation flags. Unique on (UserID, BookID).
type UserBook struct {
	ID                 uuid.UUID     `json:"id"`
	UserID             uuid.UUID     `json:"uid"`
	BookID             uuid.UUID     `json:"book_id"`
	Status             ReadingStatus `json:"status"`
	CurrentKeyPointID  *int64        `json:"current_key_point_id,omitempty"`
	CompletedKeyPoints int           `json:"completed_key_points"`
	ProgressPercentage int           `json:"progress_percentage"`
	IsFavorite         bool          `json:"is_favorite"`
	IsRecommended      bool          `json:"is_recommended"`
	StartedAt          *time.Time    `json:"started_at,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
	LastReadAt         *time.Time    `json:"last_read_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Milestone holds per-user lifetime counters. One row per user, created lazily
// with zeroed counters. LastCompletionDate stays nil until the first completion.
type Milestone struct {
	ID                      uuid.UUID  `json:"id"`
	UserID                  uuid.UUID  `json:"uid"`
	DailyStreak             int        `json:"daily_streak"`
	BooksCompleted          int        `json:"books_completed"`
	TotalReadingTimeMinutes int        `json:"total_reading_time_minutes"`
	LastCompletionDate      *time.Time `json:"last_completion_date,omitempty"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// WeeklyGoal lives on the users row: a rolling 7-day books target anchored by
// WeekStartDate.
type WeeklyGoal struct {
	UserID        uuid.UUID  `json:"uid"`
	GoalBooks     int        `json:"goal_books"`
	Progress      int        `json:"progress"`
	WeekStartDate *time.Time `json:"week_start_date,omitempty"`
}

// ProgressPercentage is 0 when no goal is set.
func (g *WeeklyGoal) ProgressPercentage() int {
	if g.GoalBooks == 0 {
		return 0
	}
	pct := g.Progress * 100 / g.GoalBooks
	if pct > 100 {
		return 100
	}
	return pct
}

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
	FriendshipDeclined FriendshipStatus = "DECLINED"
)

// FriendRequest models both a pending request and, once accepted, the
// friendship edge itself.
type FriendRequest struct {
	ID         uuid.UUID        `json:"id"`
	SenderID   uuid.UUID        `json:"sender_id"`
	ReceiverID uuid.UUID        `json:"receiver_id"`
	Status     FriendshipStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
}

// OtherUser returns the opposite side of the edge relative to uid.
func (fr *FriendRequest) OtherUser(uid uuid.UUID) uuid.UUID {
	if fr.SenderID == uid {
		return fr.ReceiverID
	}
	return fr.SenderID
}

type PasswordResetToken struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Otp       string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the token can still be redeemed.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
