// ABOUTME: Login and signup handlers backed by the remote auth endpoints
// ABOUTME: Successful logins persist the session through the local store

package console

import (
	"errors"
	"net/http"

	"github.com/carenexa/diet-console/internal/api"
	"github.com/carenexa/diet-console/internal/session"
)

// handleLoginPage renders the login form. Signed-in users skip straight to
// their destination.
func (c *Console) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.sessions.Current(); ok {
		http.Redirect(w, r, nextDestination(r), http.StatusSeeOther)
		return
	}
	c.renderLoginPage(w, "", r.URL.Query().Get("next"))
}

// handleLogin processes the login form submission.
func (c *Console) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderLoginPage(w, "Invalid form data", "")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	next := r.FormValue("next")

	if email == "" || password == "" {
		c.renderLoginPage(w, "Email and password are required", next)
		return
	}

	resp, err := c.client.Login(r.Context(), email, password)
	if err != nil {
		c.renderLoginPage(w, backendMessage(err), next)
		return
	}

	sess := session.Session{
		ID:        resp.ID,
		Email:     resp.Email,
		Firstname: resp.Firstname,
		Lastname:  resp.Lastname,
		Role:      resp.Role,
		Status:    resp.Status,
	}
	if err := c.sessions.Login(sess); err != nil {
		c.logger.Error("failed to persist session", "error", err)
		c.renderLoginPage(w, "Could not save your session, please try again", next)
		return
	}

	c.logger.Info("login successful", "email", email)
	http.Redirect(w, r, nextDestination(r), http.StatusSeeOther)
}

// handleSignupPage renders the account creation form.
func (c *Console) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.sessions.Current(); ok {
		http.Redirect(w, r, DefaultRedirect, http.StatusSeeOther)
		return
	}
	c.renderSignupPage(w, "", signupForm{})
}

// handleSignup creates the account and then logs straight in with the same
// credentials, so a new user never sees the login form.
func (c *Console) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderSignupPage(w, "Invalid form data", signupForm{})
		return
	}

	form := signupForm{
		Firstname: r.FormValue("firstname"),
		Lastname:  r.FormValue("lastname"),
		Email:     r.FormValue("email"),
	}
	password := r.FormValue("password")

	if form.Firstname == "" || form.Email == "" || password == "" {
		c.renderSignupPage(w, "First name, email, and password are required", form)
		return
	}
	if r.FormValue("accept_tnc") == "" {
		c.renderSignupPage(w, "You must accept the terms to continue", form)
		return
	}

	_, err := c.client.Signup(r.Context(), api.SignupRequest{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
		Password:  password,
		AcceptTnc: true,
	})
	if err != nil {
		c.renderSignupPage(w, backendMessage(err), form)
		return
	}

	resp, err := c.client.Login(r.Context(), form.Email, password)
	if err != nil {
		// Account exists but auto-login failed. Hand off to the login form.
		c.logger.Warn("signup succeeded but login failed", "email", form.Email, "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess := session.Session{
		ID:        resp.ID,
		Email:     resp.Email,
		Firstname: resp.Firstname,
		Lastname:  resp.Lastname,
		Role:      resp.Role,
		Status:    resp.Status,
	}
	if err := c.sessions.Login(sess); err != nil {
		c.logger.Error("failed to persist session", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	c.logger.Info("account created", "email", form.Email)
	http.Redirect(w, r, DefaultRedirect, http.StatusSeeOther)
}

// backendMessage surfaces the backend's error message to the user, falling
// back to a generic line for anything that is not an API error.
func backendMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong, please try again"
}
