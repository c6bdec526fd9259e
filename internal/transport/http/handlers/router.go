package handlers

import (
	"net/http"

	"github.com/dkovacic/devlink/internal/transport/http/middleware"
)

// NewRouter registers every API route. The auth middleware wraps each
// protected handler; the rate limiter guards only the credential endpoints.
func NewRouter(
	auth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
	userHandler *UserHandler,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	mux.Handle("POST /api/users", limiter.Middleware(http.HandlerFunc(userHandler.Register)))
	mux.Handle("POST /api/auth", limiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/profile", profileHandler.List)
	mux.HandleFunc("GET /api/profile/user/{user_id}", profileHandler.GetByUser)

	// Protected
	mux.Handle("GET /api/auth", auth(http.HandlerFunc(authHandler.CurrentUser)))
	mux.Handle("GET /api/profile/me", auth(http.HandlerFunc(profileHandler.Me)))
	mux.Handle("POST /api/profile", auth(http.HandlerFunc(profileHandler.Upsert)))
	mux.Handle("DELETE /api/profile", auth(http.HandlerFunc(profileHandler.DeleteAccount)))
	mux.Handle("PUT /api/profile/experience", auth(http.HandlerFunc(profileHandler.AddExperience)))
	mux.Handle("PUT /api/profile/education", auth(http.HandlerFunc(profileHandler.AddEducation)))
	mux.Handle("DELETE /api/profile/experience/{exp_id}", auth(http.HandlerFunc(profileHandler.RemoveExperience)))
	mux.Handle("DELETE /api/profile/education/{edu_id}", auth(http.HandlerFunc(profileHandler.RemoveEducation)))

	return mux
}
