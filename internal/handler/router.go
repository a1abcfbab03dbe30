package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
	"github.com/yusufkecer/jarosmart-backend/internal/middleware"
	"github.com/yusufkecer/jarosmart-backend/internal/service"
)

type RouterConfig struct {
	APIKey         string
	AllowedOrigins string
	TrustProxy     bool
	Issuer         *auth.Issuer
	Accounts       AccountStore
	Weights        *service.WeightHistoryService
	Preferences    *service.PreferencesService
	Ingredients    *service.IngredientsService
	Profiles       *service.ProfileService
	Logger         *zap.Logger
}

func NewRouter(cfg RouterConfig) *mux.Router {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	authHandler := NewAuthHandler(cfg.Issuer, cfg.Accounts, cfg.Logger)
	weightHandler := NewWeightHandler(cfg.Weights)
	preferencesHandler := NewPreferencesHandler(cfg.Preferences)
	ingredientsHandler := NewIngredientsHandler(cfg.Ingredients)
	profileHandler := NewProfileHandler(cfg.Profiles)

	loginRL := middleware.NewRateLimiter(5, 15*time.Minute, cfg.TrustProxy)
	registerRL := middleware.NewRateLimiter(10, 60*time.Minute, cfg.TrustProxy)

	r := mux.NewRouter()

	// Global middleware: CORS → Security Headers → MaxBytesReader
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))
	api.Use(middleware.SessionMiddleware(cfg.Issuer))
	api.Use(middleware.RequestLogger(cfg.Logger))

	api.Handle("/auth/register", registerRL.Middleware(http.HandlerFunc(authHandler.Register))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/login", loginRL.Middleware(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/weights", weightHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/weights", weightHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/weights/current", weightHandler.Current).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/preferences", preferencesHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/preferences", preferencesHandler.Put).Methods(http.MethodPut, http.MethodOptions)

	api.HandleFunc("/ingredients", ingredientsHandler.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ingredients", ingredientsHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/ingredients/defaults", ingredientsHandler.Defaults).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/profile", profileHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPatch, http.MethodOptions)

	return r
}
