package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/bookwise/internal/service"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	booksService      service.BooksServiceI
	libraryService    service.LibraryServiceI
	milestonesService service.MilestonesServiceI
	goalService       service.WeeklyGoalServiceI
	friendsService    service.FriendsServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	BooksService      service.BooksServiceI
	LibraryService    service.LibraryServiceI
	MilestonesService service.MilestonesServiceI
	GoalService       service.WeeklyGoalServiceI
	FriendsService    service.FriendsServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		booksService:      servicesOptions.BooksService,
		libraryService:    servicesOptions.LibraryService,
		milestonesService: servicesOptions.MilestonesService,
		goalService:       servicesOptions.GoalService,
		friendsService:    servicesOptions.FriendsService,
		jwtService:        servicesOptions.JwtService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Post("/auth/forgot-password", s.ForgotPassword)
		r.Post("/auth/verify-otp", s.VerifyOtp)
		r.Post("/auth/reset-password", s.ResetPassword)

		r.Get("/books", s.GetBooks)
		r.Get("/books/{id}", s.GetBook)
		r.Get("/books/category/{category}", s.GetBooksByCategory)
		r.Get("/books/status/{status}", s.GetBooksByStatus)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/profile", s.GetProfile)
			r.Patch("/profile", s.UpdateProfile)
			r.Put("/profile/theme", s.UpdateTheme)
			r.Put("/profile/notifications", s.UpdateNotifications)
			r.Get("/profile/stats", s.GetProfileStats)
			r.Delete("/profile", s.DeleteAccount)

			r.Post("/library", s.AddToLibrary)
			r.Get("/library", s.GetLibrary)
			r.Get("/library/stats", s.GetLibraryStats)
			r.Get("/library/status/{status}", s.GetLibraryByStatus)
			r.Get("/library/favorites", s.GetFavorites)
			r.Get("/library/recommended", s.GetRecommended)
			r.Get("/library/reading", s.GetCurrentlyReading)
			r.Get("/library/in-progress", s.GetInProgress)
			r.Put("/library/{id}/status", s.UpdateReadingStatus)
			r.Put("/library/progress", s.UpdateProgress)
			r.Put("/library/books/{bookID}/favorite", s.SetFavorite)
			r.Put("/library/books/{bookID}/recommend", s.SetRecommended)
			r.Post("/library/books/{bookID}/reading-time", s.AddReadingTime)
			r.Delete("/library/books/{bookID}", s.RemoveFromLibrary)

			r.Get("/milestones", s.GetMilestone)

			r.Put("/goal", s.SetWeeklyGoal)
			r.Get("/goal", s.GetWeeklyGoal)

			r.Post("/friends/requests", s.SendFriendRequest)
			r.Post("/friends/requests/{id}/respond", s.RespondFriendRequest)
			r.Get("/friends/requests/received", s.GetReceivedRequests)
			r.Get("/friends/requests/sent", s.GetSentRequests)
			r.Get("/friends", s.GetFriends)
			r.Delete("/friends/{friendID}", s.Unfriend)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
