// @title Bookwise API
// @description API for the reading companion app "Bookwise"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"log/slog"

	"github.com/limbo/bookwise/internal/api"
	"github.com/limbo/bookwise/internal/repository"
	"github.com/limbo/bookwise/internal/service"
	"github.com/limbo/bookwise/pkg/cleanup"
	"github.com/limbo/bookwise/pkg/config"
	jwtservice "github.com/limbo/bookwise/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	booksRepo := repository.NewBooksRepo(&dbCfg)
	userBooksRepo := repository.NewUserBooksRepo(&dbCfg)
	milestonesRepo := repository.NewMilestonesRepo(&dbCfg)
	friendRequestsRepo := repository.NewFriendRequestsRepo(&dbCfg)
	resetTokensRepo := repository.NewResetTokensRepo(&dbCfg)

	userService := service.NewUserService(usersRepo, resetTokensRepo, service.NewLogDispatcher(slog.Default()))
	booksService := service.NewBooksService(booksRepo)
	milestonesService := service.NewMilestonesService(milestonesRepo, usersRepo)
	goalService := service.NewWeeklyGoalService(usersRepo)
	libraryService := service.NewLibraryService(userBooksRepo, booksRepo, usersRepo, milestonesService, goalService)
	friendsService := service.NewFriendsService(friendRequestsRepo, usersRepo)

	serv := api.New(&api.ServicesList{
		UserService:       userService,
		BooksService:      booksService,
		LibraryService:    libraryService,
		MilestonesService: milestonesService,
		GoalService:       goalService,
		FriendsService:    friendsService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
