package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/bookwise/internal/api"
	errorvalues "github.com/limbo/bookwise/internal/error_values"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/internal/service/mocks"
	"github.com/limbo/bookwise/pkg/entity"
	jwtservice "github.com/limbo/bookwise/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	email           = "reader@example.com"
	fullName        = "Test Reader"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID          = uuid.New()
)

func testUser() *entity.User {
	return &entity.User{
		ID:           userID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(passwordHash),
		Theme:        entity.ThemeLight,
	}
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		FullName: fullName,
		Password: password,
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &service.RegisterRequest{
					Email:    email,
					FullName: fullName,
					Password: password,
				}).Return(testUser(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("validation error: name"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
		serv.Register(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("wrong credentials", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.ForgotPasswordRequest{Email: email})
	require.NoError(t, err)
	t.Run("neutral answer for any email", func(t *testing.T) {
		uService.EXPECT().ForgotPassword(gomock.Any(), email).Return(nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password", bytes.NewReader(body))
		serv.ForgotPassword(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("empty email", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password", bytes.NewReader([]byte(`{}`)))
		serv.ForgotPassword(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestVerifyOtp(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.VerifyOtpRequest{Email: email, Otp: "1234"})
	require.NoError(t, err)
	testCases := []struct {
		ExpectedCode int
		ServiceErr   error
	}{
		{ExpectedCode: http.StatusOK, ServiceErr: nil},
		{ExpectedCode: http.StatusBadRequest, ServiceErr: errorvalues.ErrOtpInvalid},
		{ExpectedCode: http.StatusBadRequest, ServiceErr: errorvalues.ErrOtpNotFound},
		{ExpectedCode: http.StatusBadRequest, ServiceErr: errorvalues.ErrOtpExpired},
		{ExpectedCode: http.StatusInternalServerError, ServiceErr: errors.New("service error")},
	}
	for _, tc := range testCases {
		uService.EXPECT().VerifyOtp(gomock.Any(), email, "1234").Return(tc.ServiceErr)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify-otp", bytes.NewReader(body))
		serv.VerifyOtp(rr, req)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": ` + uid.String() + `}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)
	t.Run("successful auth", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("garbage token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user behind valid token", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestAddToLibraryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	bookID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.AddToLibraryRequest{
		BookID: bookID.String(),
		Status: "READING",
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				lService.EXPECT().AddToLibrary(gomock.Any(), userID, &service.AddToLibraryRequest{
					BookID: bookID,
					Status: "READING",
				}).Return(&entity.UserBook{
					ID:     uuid.New(),
					UserID: userID,
					BookID: bookID,
					Status: entity.StatusReading,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				lService.EXPECT().AddToLibrary(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrBookInLibrary)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().AddToLibrary(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrBookNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().AddToLibrary(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrInvalidReadingStatus)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/library", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.AddToLibrary(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUpdateProgressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	bookID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.UpdateProgressRequest{
		BookID:             bookID.String(),
		CompletedKeyPoints: 10,
		ProgressPercentage: 100,
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateProgress(gomock.Any(), userID, &service.UpdateProgressRequest{
					BookID:             bookID,
					CompletedKeyPoints: 10,
					ProgressPercentage: 100,
				}).Return(&entity.UserBook{
					ID:                 uuid.New(),
					UserID:             userID,
					BookID:             bookID,
					Status:             entity.StatusCompleted,
					ProgressPercentage: 100,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateProgress(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrInvalidProgress)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateProgress(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUserBookNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/library/progress", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.UpdateProgress(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUpdateReadingStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLibraryServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		LibraryService: lService,
	})
	entryID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.UpdateReadingStatusRequest{Status: "COMPLETED"})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateStatus(gomock.Any(), userID, entryID, "COMPLETED").Return(&entity.UserBook{
					ID:     entryID,
					UserID: userID,
					Status: entity.StatusCompleted,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateStatus(gomock.Any(), userID, entryID, "COMPLETED").Return(nil, errorvalues.ErrUserBookNotFound)
			},
		},
		{
			// Foreign entries are reported as missing
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				lService.EXPECT().UpdateStatus(gomock.Any(), userID, entryID, "COMPLETED").Return(nil, errorvalues.ErrWrongOwner)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/library/"+entryID.String()+"/status", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", entryID.String())
		serv.UpdateReadingStatus(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRespondFriendRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	fService := mocks.NewMockFriendsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		FriendsService: fService,
	})
	requestID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.RespondFriendRequestRequest{Action: "ACCEPT"})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				now := time.Now()
				fService.EXPECT().Respond(gomock.Any(), userID, requestID, "ACCEPT").Return(&entity.FriendRequest{
					ID:         requestID,
					ReceiverID: userID,
					Status:     entity.FriendshipAccepted,
					AcceptedAt: &now,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				fService.EXPECT().Respond(gomock.Any(), userID, requestID, "ACCEPT").Return(nil, errorvalues.ErrInvalidAction)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				fService.EXPECT().Respond(gomock.Any(), userID, requestID, "ACCEPT").Return(nil, errorvalues.ErrNotReceiver)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				fService.EXPECT().Respond(gomock.Any(), userID, requestID, "ACCEPT").Return(nil, errorvalues.ErrRequestNotPending)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				fService.EXPECT().Respond(gomock.Any(), userID, requestID, "ACCEPT").Return(nil, errorvalues.ErrFriendRequestNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests/"+requestID.String()+"/respond", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", requestID.String())
		serv.RespondFriendRequest(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestSendFriendRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	fService := mocks.NewMockFriendsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		FriendsService: fService,
	})
	receiverID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.SendFriendRequestRequest{ReceiverID: receiverID.String()})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				fService.EXPECT().SendRequest(gomock.Any(), userID, receiverID).Return(&entity.FriendRequest{
					ID:         uuid.New(),
					SenderID:   userID,
					ReceiverID: receiverID,
					Status:     entity.FriendshipPending,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				fService.EXPECT().SendRequest(gomock.Any(), userID, receiverID).Return(nil, errorvalues.ErrSelfFriendRequest)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				fService.EXPECT().SendRequest(gomock.Any(), userID, receiverID).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				fService.EXPECT().SendRequest(gomock.Any(), userID, receiverID).Return(nil, errorvalues.ErrFriendRequestExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte(`{"receiver_id": "not-a-uuid"}`)),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", tc.Body)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.SendFriendRequest(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestSetWeeklyGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockWeeklyGoalServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalService: gService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.SetWeeklyGoalRequest{GoalBooks: 3})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				weekStart := time.Now()
				gService.EXPECT().SetWeeklyGoal(gomock.Any(), userID, 3).Return(&entity.WeeklyGoal{
					UserID:        userID,
					GoalBooks:     3,
					Progress:      0,
					WeekStartDate: &weekStart,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				gService.EXPECT().SetWeeklyGoal(gomock.Any(), userID, 3).Return(nil, errorvalues.ErrInvalidGoal)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().SetWeeklyGoal(gomock.Any(), userID, 3).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/goal", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.SetWeeklyGoal(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetBooksHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBooksServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BooksService: bService,
	})
	bookID := uuid.New()
	t.Run("catalog provided", func(t *testing.T) {
		bService.EXPECT().GetAllBooks(gomock.Any()).Return([]*entity.Book{
			{ID: bookID, Title: "Atomic Habits"},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
		serv.GetBooks(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetBooksResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Len(t, resp.Books, 1)
	})
	t.Run("book found", func(t *testing.T) {
		bService.EXPECT().GetBook(gomock.Any(), bookID).Return(&entity.Book{ID: bookID}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+bookID.String(), nil)
		r.SetPathValue("id", bookID.String())
		serv.GetBook(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("book not found", func(t *testing.T) {
		bService.EXPECT().GetBook(gomock.Any(), bookID).Return(nil, errorvalues.ErrBookNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+bookID.String(), nil)
		r.SetPathValue("id", bookID.String())
		serv.GetBook(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/abc", nil)
		r.SetPathValue("id", "abc")
		serv.GetBook(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unknown catalog status", func(t *testing.T) {
		bService.EXPECT().GetBooksByStatus(gomock.Any(), "TRENDING").Return(nil, errorvalues.ErrInvalidBookStatus)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/status/TRENDING", nil)
		r.SetPathValue("status", "TRENDING")
		serv.GetBooksByStatus(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

// dropDispatcher swallows outgoing OTP emails during integration runs.
type dropDispatcher struct{}

func (dropDispatcher) SendOtpEmail(context.Context, string, string) error { return nil }

func TestUsersHandlersIntegrational(t *testing.T) {
	cfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(cfg)
	tokensRepo := repository.NewResetTokensRepo(cfg)
	userService := service.NewUserService(repo, tokensRepo, dropDispatcher{})
	server := api.New(&api.ServicesList{
		UserService: userService,
		JwtService:  jwtservice.New("secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		FullName: fullName,
		Password: password,
	})
	require.NoError(t, err)
	var uid uuid.UUID
	t.Run("successfully registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		server.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		defer rr.Result().Body.Close()
		uidStr, ok := result["uid"].(string)
		if ok {
			uid = uuid.MustParse(uidStr)
		} else {
			t.Error("invalid response body")
		}
	})
	t.Run("error registered: duplicate email", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		server.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("error registered: invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
		server.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("successfully logged in", func(t *testing.T) {
		loginBody, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
			Email:    email,
			Password: password,
		})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(loginBody))
		server.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err = sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		defer rr.Result().Body.Close()
		uidStr, ok := result["uid"].(string)
		var uidLogin uuid.UUID
		if ok {
			uidLogin = uuid.MustParse(uidStr)
		} else {
			t.Error("invalid response body")
		}
		assert.Equal(t, uid, uidLogin)
	})
	t.Run("error login: wrong password", func(t *testing.T) {
		loginBody, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
			Email:    email,
			Password: password + "12345",
		})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(loginBody))
		server.Login(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
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
