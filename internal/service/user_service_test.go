package service_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// captureDispatcher records the last OTP instead of sending it, so the
// reset flow can be driven end to end.
type captureDispatcher struct {
	mu        sync.Mutex
	lastEmail string
	lastOtp   string
}

func (d *captureDispatcher) SendOtpEmail(_ context.Context, email, otp string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastEmail = email
	d.lastOtp = otp
	return nil
}

func TestUserServiceIntegrational(t *testing.T) {
	dbCfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(dbCfg)
	tokensRepo := repository.NewResetTokensRepo(dbCfg)
	dispatcher := &captureDispatcher{}
	us := service.NewUserService(repo, tokensRepo, dispatcher)
	ctx := context.Background()
	email := "reader@example.com"
	fullName := "Test Reader"
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Email:    email,
			FullName: fullName,
			Password: password,
		})
		assert.NoError(t, err)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, fullName, user.FullName)
		assert.Equal(t, entity.ThemeLight, user.Theme)
		assert.True(t, user.Notifications.StreakEnabled)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    email,
			FullName: fullName,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("error registering w/ invalid name", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    "another@example.com",
			FullName: "x",
			Password: password,
		})
		assert.Error(t, err)
	})
	t.Run("error registering w/ short password", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    "another@example.com",
			FullName: fullName,
			Password: "short",
		})
		assert.Error(t, err)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, email, password)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
	})
	t.Run("error login w/ wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, email, "bbbbbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("updated profile fields", func(t *testing.T) {
		bio := "I read a lot"
		country := "NL"
		res, err := us.UpdateProfile(ctx, user.ID, &service.UpdateProfileRequest{
			Bio:     &bio,
			Country: &country,
		})
		assert.NoError(t, err)
		assert.Equal(t, bio, res.Bio)
		assert.Equal(t, country, res.Country)
		assert.Equal(t, fullName, res.FullName)
	})
	t.Run("updated theme", func(t *testing.T) {
		res, err := us.UpdateTheme(ctx, user.ID, "DARK")
		assert.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, res.Theme)
	})
	t.Run("error on unknown theme", func(t *testing.T) {
		_, err := us.UpdateTheme(ctx, user.ID, "SOLARIZED")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTheme)
	})
	t.Run("updated notification toggles", func(t *testing.T) {
		off := false
		res, err := us.UpdateNotifications(ctx, user.ID, &service.NotificationSettingsRequest{
			StreakEnabled: &off,
		})
		assert.NoError(t, err)
		assert.False(t, res.Notifications.StreakEnabled)
		assert.True(t, res.Notifications.DailyReminderEnabled)
	})
	t.Run("forgot password dispatches otp", func(t *testing.T) {
		err := us.ForgotPassword(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, email, dispatcher.lastEmail)
		assert.Len(t, dispatcher.lastOtp, 4)
	})
	t.Run("forgot password silent on unknown email", func(t *testing.T) {
		before := dispatcher.lastOtp
		err := us.ForgotPassword(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Equal(t, before, dispatcher.lastOtp)
	})
	t.Run("verify rejects wrong otp", func(t *testing.T) {
		err := us.VerifyOtp(ctx, email, "0000")
		assert.ErrorIs(t, err, errorvalues.ErrOtpInvalid)
	})
	t.Run("verify accepts issued otp", func(t *testing.T) {
		err := us.VerifyOtp(ctx, email, dispatcher.lastOtp)
		assert.NoError(t, err)
	})
	newPassword := "fresh_password"
	t.Run("reset password", func(t *testing.T) {
		err := us.ResetPassword(ctx, email, dispatcher.lastOtp, newPassword)
		assert.NoError(t, err)
		_, err = us.Login(ctx, email, newPassword)
		assert.NoError(t, err)
		_, err = us.Login(ctx, email, password)
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("used otp cannot be redeemed twice", func(t *testing.T) {
		err := us.ResetPassword(ctx, email, dispatcher.lastOtp, "one_more_password")
		assert.ErrorIs(t, err, errorvalues.ErrOtpExpired)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, newPassword)
		assert.NoError(t, err)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, newPassword)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("bookwise"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
