// ABOUTME: Template rendering functions for the console UI
// ABOUTME: Loads templates from the embedded filesystem and renders them

package console

import (
	"html/template"
	"net/http"

	"github.com/carenexa/diet-console/internal/api"
	"github.com/carenexa/diet-console/internal/session"
)

// Template data types. Every page carries User so the base layout can draw
// the navigation; it is nil on public pages.
type landingData struct {
	Title string
	User  *session.Session
}

type loginPageData struct {
	Title string
	User  *session.Session
	Error string
	Next  string
}

type signupForm struct {
	Firstname string
	Lastname  string
	Email     string
}

type signupPageData struct {
	Title string
	User  *session.Session
	Error string
	Form  signupForm
}

type dashboardData struct {
	Title      string
	User       *session.Session
	Preset     string
	From       string
	To         string
	Total      int
	RawSummary string
	Error      string
}

type dietRow struct {
	ID     string
	Title  string
	Status string
	Date   string
}

type dietsListData struct {
	Title    string
	User     *session.Session
	Diets    []dietRow
	ShareURL string
	Notice   string
	Error    string
}

type dietNewData struct {
	Title string
	User  *session.Session
	Error string
	Form  intakeForm
}

type dietDetailData struct {
	Title    string
	User     *session.Session
	Diet     *api.Diet
	Plan     api.DietPlan
	Notes    []template.HTML
	Snapshot api.ProfileSnapshot
	Date     string
	ShareURL string
	RawJSON  string
}

type dietEditData struct {
	Title    string
	User     *session.Session
	DietID   string
	PlanName string
	Status   string
	DietJSON string
	Error    string
}

type sharedDietData struct {
	Title string
	User  *session.Session
	Diet  *api.Diet
	Plan  api.DietPlan
	Notes []template.HTML
	Date  string
	Error string
}

type errorPageData struct {
	Title string
	User  *session.Session
	Error string
}

// currentUser returns the signed-in session for template headers, or nil.
func (c *Console) currentUser() *session.Session {
	sess, ok := c.sessions.Current()
	if !ok {
		return nil
	}
	return &sess
}

// render parses the base layout plus the page templates and executes them.
func (c *Console) render(w http.ResponseWriter, data any, pages ...string) {
	files := []string{"templates/base.html"}
	for _, page := range pages {
		files = append(files, "templates/"+page)
	}
	tmpl := template.Must(template.ParseFS(templateFS, files...))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		c.logger.Error("failed to render page", "page", pages[0], "error", err)
	}
}

// renderLanding renders the public landing page.
func (c *Console) renderLanding(w http.ResponseWriter) {
	c.render(w, landingData{Title: "Carenexa Diet Console"}, "landing.html")
}

// renderLoginPage renders the login form.
func (c *Console) renderLoginPage(w http.ResponseWriter, errorMsg, next string) {
	c.render(w, loginPageData{
		Title: "Sign In",
		Error: errorMsg,
		Next:  next,
	}, "login.html")
}

// renderSignupPage renders the account creation form.
func (c *Console) renderSignupPage(w http.ResponseWriter, errorMsg string, form signupForm) {
	c.render(w, signupPageData{
		Title: "Create Account",
		Error: errorMsg,
		Form:  form,
	}, "signup.html")
}

// renderDashboard renders the analytics page.
func (c *Console) renderDashboard(w http.ResponseWriter, data dashboardData) {
	c.render(w, data, "dashboard.html")
}

// renderDietsList renders the saved plans page.
func (c *Console) renderDietsList(w http.ResponseWriter, data dietsListData) {
	c.render(w, data, "diets.html")
}

// renderDietNew renders the intake form.
func (c *Console) renderDietNew(w http.ResponseWriter, data dietNewData) {
	c.render(w, data, "diet_new.html")
}

// renderDietDetail renders a single plan.
func (c *Console) renderDietDetail(w http.ResponseWriter, data dietDetailData) {
	c.render(w, data, "diet_detail.html", "plan.html")
}

// renderDietEdit renders the edit form.
func (c *Console) renderDietEdit(w http.ResponseWriter, data dietEditData) {
	c.render(w, data, "diet_edit.html")
}

// renderSharedDiet renders the public share page.
func (c *Console) renderSharedDiet(w http.ResponseWriter, data sharedDietData) {
	c.render(w, data, "share.html", "plan.html")
}

// renderSharedError renders the share page error state.
func (c *Console) renderSharedError(w http.ResponseWriter, errorMsg string) {
	c.render(w, sharedDietData{Title: "Shared Diet", Error: errorMsg}, "share.html", "plan.html")
}

// renderDietError renders the in-console error page for a failed load.
func (c *Console) renderDietError(w http.ResponseWriter, title, message string, err error) {
	c.logger.Error("page load failed", "page", title, "error", err)
	c.render(w, errorPageData{
		Title: title,
		User:  c.currentUser(),
		Error: message,
	}, "error.html")
}
