package routes

import (
	"net/http"

	"myblog/internal/handlers"
	"myblog/internal/metrics"
	"myblog/internal/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

func InitRoutes(
	router *mux.Router,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	authH *handlers.AuthHandler,
	collector *metrics.Collector,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging, middleware.Metrics(collector))

	router.HandleFunc("/", handlers.Root).Methods(http.MethodGet)
	router.HandleFunc("/add", handlers.Add).Methods(http.MethodGet)

	// --- Articles ---
	// preview goes first so it is never read as an id
	router.HandleFunc("/articles/preview", articleH.Preview).Methods(http.MethodPost)
	router.HandleFunc("/articles", articleH.Create).Methods(http.MethodPost)
	router.HandleFunc("/articles", articleH.List).Methods(http.MethodGet)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.Update).Methods(http.MethodPatch)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.Delete).Methods(http.MethodDelete)

	// --- Comments ---
	router.HandleFunc("/comments", commentH.Create).Methods(http.MethodPost)
	router.HandleFunc("/comments", commentH.List).Methods(http.MethodGet)
	router.HandleFunc("/comments/{id:[0-9]+}", commentH.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/comments/{id:[0-9]+}", commentH.Update).Methods(http.MethodPatch)
	router.HandleFunc("/comments/{id:[0-9]+}", commentH.Delete).Methods(http.MethodDelete)

	// --- Users ---
	router.HandleFunc("/login", authH.Login).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}", authH.GetUserByID).Methods(http.MethodGet)

	router.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}
