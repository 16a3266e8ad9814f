// ABOUTME: Web console package for the Carenexa diet service
// ABOUTME: Provides session gating, route registration, and page handlers

package console

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/carenexa/diet-console/internal/api"
	"github.com/carenexa/diet-console/internal/session"
)

// DefaultRedirect is where authenticated users land when no explicit
// destination was requested.
const DefaultRedirect = "/dashboard"

// Console handles the server-rendered UI routes.
type Console struct {
	client   *api.Client
	sessions *session.Store
	logger   *slog.Logger
}

// New creates a new Console handler.
func New(client *api.Client, sessions *session.Store) *Console {
	return &Console{
		client:   client,
		sessions: sessions,
		logger:   slog.Default().With("component", "console"),
	}
}

// RegisterRoutes registers all console routes on the given mux.
func (c *Console) RegisterRoutes(mux *http.ServeMux) {
	// Public routes (no session required)
	mux.HandleFunc("GET /{$}", c.handleLanding)
	mux.HandleFunc("GET /login", c.handleLoginPage)
	mux.HandleFunc("POST /login", c.handleLogin)
	mux.HandleFunc("GET /signup", c.handleSignupPage)
	mux.HandleFunc("POST /signup", c.handleSignup)
	mux.HandleFunc("GET /share/{token}", c.handleSharedDiet)

	// Protected routes (session required)
	mux.HandleFunc("POST /logout", c.requireSession(c.handleLogout))
	mux.HandleFunc("GET /dashboard", c.requireSession(c.handleDashboard))

	// Diet management
	mux.HandleFunc("GET /diets", c.requireSession(c.handleDietsList))
	mux.HandleFunc("GET /diets/new", c.requireSession(c.handleDietNewPage))
	mux.HandleFunc("POST /diets/new", c.requireSession(c.handleDietGenerate))
	mux.HandleFunc("GET /diets/{id}", c.requireSession(c.handleDietDetail))
	mux.HandleFunc("GET /diets/{id}/edit", c.requireSession(c.handleDietEditPage))
	mux.HandleFunc("POST /diets/{id}/edit", c.requireSession(c.handleDietUpdate))
	mux.HandleFunc("POST /diets/{id}/share", c.requireSession(c.handleDietShare))
	mux.HandleFunc("POST /diets/{id}/pdf", c.requireSession(c.handleDietPDF))
	mux.HandleFunc("POST /diets/{id}/delete", c.requireSession(c.handleDietDelete))

	c.logger.Info("console routes registered")
}

// requireSession wraps a handler to require an authenticated session. Guests
// are redirected to the login page carrying the requested path so login can
// return them there.
func (c *Console) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.sessions.Ready() {
			// The one-time state read has not happened yet; do not guess.
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Checking session", http.StatusServiceUnavailable)
			return
		}
		if _, ok := c.sessions.Current(); !ok {
			http.Redirect(w, r, loginRedirectURL(r), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// loginRedirectURL builds the login URL with the original destination in the
// next parameter.
func loginRedirectURL(r *http.Request) string {
	dest := r.URL.Path
	if r.URL.RawQuery != "" {
		dest += "?" + r.URL.RawQuery
	}
	return "/login?next=" + url.QueryEscape(dest)
}

// nextDestination extracts and sanitizes the post-login destination. Only
// local paths are honored so the login form cannot be used as an open
// redirect.
func nextDestination(r *http.Request) string {
	next := r.FormValue("next")
	if next == "" {
		next = r.URL.Query().Get("next")
	}
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return DefaultRedirect
	}
	return next
}

// WithRequestID is middleware that tags each request with a generated id for
// log correlation.
func (c *Console) WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		c.logger.Debug("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// handleLanding renders the marketing landing page, or sends signed-in users
// straight to their dashboard.
func (c *Console) handleLanding(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.sessions.Current(); ok {
		http.Redirect(w, r, DefaultRedirect, http.StatusSeeOther)
		return
	}
	c.renderLanding(w)
}

// handleLogout clears the local session and returns to the login page.
func (c *Console) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := c.sessions.Logout(); err != nil {
		c.logger.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
