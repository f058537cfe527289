package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/denarius-project/denarius/internal/db"
	"github.com/denarius-project/denarius/internal/finance/application"
	"github.com/denarius-project/denarius/internal/finance/infrastructure"
	"github.com/denarius-project/denarius/internal/finance/interfaces"
	"github.com/denarius-project/denarius/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	userHandler     *user.Handler
	categoryHandler *interfaces.CategoryHandler
	accountHandler  *interfaces.AccountHandler
	movementHandler *interfaces.MovementHandler
}

func NewServer(
	dbService *database.DBService,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	accountHandler *interfaces.AccountHandler,
	movementHandler *interfaces.MovementHandler,
) *Server {
	return &Server{
		router:          http.NewServeMux(),
		dbService:       dbService,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		accountHandler:  accountHandler,
		movementHandler: movementHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	// Category, account and movement routes share the /accounts/ prefix the
	// public API has always used.
	accountsRoutes := http.NewServeMux()
	accountsRoutes.Handle("GET /accounts/view_all_categories/{$}", http.HandlerFunc(s.categoryHandler.ViewAllCategories))
	accountsRoutes.Handle("GET /accounts/view_user_categories/{user_id}/{$}", http.HandlerFunc(s.categoryHandler.ViewUserCategories))
	accountsRoutes.Handle("GET /accounts/view_single_category/{category_id}/{$}", http.HandlerFunc(s.categoryHandler.ViewSingleCategory))
	accountsRoutes.Handle("POST /accounts/register_category/{$}", http.HandlerFunc(s.categoryHandler.RegisterCategory))
	accountsRoutes.Handle("POST /accounts/update_category/{$}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	accountsRoutes.Handle("POST /accounts/delete_category/{$}", http.HandlerFunc(s.categoryHandler.DeleteCategory))

	accountsRoutes.Handle("GET /accounts/view_all_accounts/{$}", http.HandlerFunc(s.accountHandler.ViewAllAccounts))
	accountsRoutes.Handle("GET /accounts/view_user_accounts/{user_id}/{$}", http.HandlerFunc(s.accountHandler.ViewUserAccounts))
	accountsRoutes.Handle("GET /accounts/view_single_account/{account_id}/{$}", http.HandlerFunc(s.accountHandler.ViewSingleAccount))
	accountsRoutes.Handle("POST /accounts/register_account/{$}", http.HandlerFunc(s.accountHandler.RegisterAccount))
	accountsRoutes.Handle("POST /accounts/update_account/{$}", http.HandlerFunc(s.accountHandler.UpdateAccount))
	accountsRoutes.Handle("POST /accounts/delete_account/{$}", http.HandlerFunc(s.accountHandler.DeleteAccount))

	accountsRoutes.Handle("GET /accounts/view_all_movements/{$}", http.HandlerFunc(s.movementHandler.ViewAllMovements))
	accountsRoutes.Handle("GET /accounts/view_user_movements/{user_id}/{$}", http.HandlerFunc(s.movementHandler.ViewUserMovements))
	accountsRoutes.Handle("GET /accounts/view_single_movement/{movement_id}/{$}", http.HandlerFunc(s.movementHandler.ViewSingleMovement))
	accountsRoutes.Handle("POST /accounts/register_movement/{$}", http.HandlerFunc(s.movementHandler.RegisterMovement))
	accountsRoutes.Handle("POST /accounts/update_movement/{$}", http.HandlerFunc(s.movementHandler.UpdateMovement))
	accountsRoutes.Handle("POST /accounts/delete_movement/{$}", http.HandlerFunc(s.movementHandler.DeleteMovement))

	usersRoutes := http.NewServeMux()
	usersRoutes.Handle("GET /users/view_all_users/{$}", http.HandlerFunc(s.userHandler.HandleViewAllUsers))
	usersRoutes.Handle("POST /users/register_user/{$}", http.HandlerFunc(s.userHandler.HandleRegisterUser))
	usersRoutes.Handle("POST /users/update_user/{$}", http.HandlerFunc(s.userHandler.HandleUpdateUser))
	usersRoutes.Handle("POST /users/delete_user/{$}", http.HandlerFunc(s.userHandler.HandleDeleteUser))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/accounts/", accountsRoutes)
	mainRouter.Handle("/users/", usersRoutes)
	mainRouter.Handle("GET /ready", http.HandlerFunc(s.handleReady))
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondStatus)

	accountRepo := infrastructure.NewAccountRepository(dbService.DB)
	accountService := application.NewAccountService(accountRepo)
	accountHandler := interfaces.NewAccountHandler(accountService, respondJSON, respondStatus)

	movementRepo := infrastructure.NewMovementRepository(dbService.DB)
	movementService := application.NewMovementService(movementRepo)
	movementHandler := interfaces.NewMovementHandler(movementService, respondJSON, respondStatus)

	server := NewServer(dbService, userHandler, categoryHandler, accountHandler, movementHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
