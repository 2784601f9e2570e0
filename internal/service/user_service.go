package service

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type UserService struct {
	repo       repository.UsersRepositoryI
	tokensRepo repository.ResetTokensRepositoryI
	dispatcher Dispatcher
}

func NewUserService(usersRepo repository.UsersRepositoryI, tokensRepo repository.ResetTokensRepositoryI, dispatcher Dispatcher) *UserService {
	if usersRepo == nil || tokensRepo == nil || dispatcher == nil {
		log.Fatal("on user service provided nil dependencies")
	}
	return &UserService{
		repo:       usersRepo,
		tokensRepo: tokensRepo,
		dispatcher: dispatcher,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		Theme:        entity.ThemeLight,
		Notifications: entity.NotificationSettings{
			StreakEnabled:        true,
			DailyReminderEnabled: true,
			NewReleasesEnabled:   true,
		},
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateTheme(ctx context.Context, id uuid.UUID, theme string) (*entity.User, error) {
	parsed, ok := entity.ParseThemePreference(theme)
	if !ok {
		return nil, errorvalues.ErrInvalidTheme
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = us.repo.UpdateTheme(ctx, id, parsed); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	user.Theme = parsed
	return user, nil
}

func (us *UserService) UpdateNotifications(ctx context.Context, id uuid.UUID, req *NotificationSettingsRequest) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	settings := user.Notifications
	if req.StreakEnabled != nil {
		settings.StreakEnabled = *req.StreakEnabled
	}
	if req.DailyReminderEnabled != nil {
		settings.DailyReminderEnabled = *req.DailyReminderEnabled
	}
	if req.NewReleasesEnabled != nil {
		settings.NewReleasesEnabled = *req.NewReleasesEnabled
	}
	if err = us.repo.UpdateNotifications(ctx, id, settings); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	user.Notifications = settings
	return user, nil
}

// ForgotPassword always succeeds for unknown emails so the endpoint cannot
// be used to probe which addresses are registered.
func (us *UserService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := us.repo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if err := us.tokensRepo.DeleteByEmail(ctx, email); err != nil {
		return errors.New("tokens repository error: " + err.Error())
	}
	otp := strconv.Itoa(rand.IntN(9000) + 1000)
	token := &entity.PasswordResetToken{
		Email:     email,
		Otp:       otp,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := us.tokensRepo.Create(ctx, token); err != nil {
		return errors.New("tokens repository error: " + err.Error())
	}
	if err := us.dispatcher.SendOtpEmail(ctx, email, otp); err != nil {
		return errors.New("dispatching otp error: " + err.Error())
	}
	return nil
}

func (us *UserService) VerifyOtp(ctx context.Context, email, otp string) error {
	_, err := us.checkOtp(ctx, email, otp)
	return err
}

func (us *UserService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	token, err := us.checkOtp(ctx, email, otp)
	if err != nil {
		return err
	}
	if len(newPassword) < 8 || len(newPassword) > 72 {
		return errors.New("validation error: password must be 8 to 72 characters")
	}
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	passwordHash, err := Hash(newPassword)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = us.repo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return errors.New("repository updating error: " + err.Error())
	}
	if err = us.tokensRepo.MarkUsed(ctx, token.ID); err != nil {
		return errors.New("tokens repository error: " + err.Error())
	}
	return nil
}

func (us *UserService) checkOtp(ctx context.Context, email, otp string) (*entity.PasswordResetToken, error) {
	token, err := us.tokensRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOtpNotFound) {
			return nil, err
		}
		return nil, errors.New("tokens repository error: " + err.Error())
	}
	if token.Otp != otp {
		return nil, errorvalues.ErrOtpInvalid
	}
	if !token.Valid(time.Now()) {
		return nil, errorvalues.ErrOtpExpired
	}
	return token, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errorvalues.ErrWrongCredentials
	}
	if err = us.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
