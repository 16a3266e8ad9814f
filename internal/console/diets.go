// ABOUTME: Diet list, generation, detail, editing, sharing, and PDF export
// ABOUTME: All plan data lives on the backend; handlers stay stateless

package console

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/carenexa/diet-console/internal/api"
)

// pdfFallbackName is used when a plan has no usable title.
const pdfFallbackName = "Carenexa Diet Plan"

// handleDietsList renders the saved plans with their row actions.
func (c *Console) handleDietsList(w http.ResponseWriter, r *http.Request) {
	data := dietsListData{
		Title:    "My Diets",
		User:     c.currentUser(),
		ShareURL: r.URL.Query().Get("share_url"),
		Notice:   r.URL.Query().Get("notice"),
	}

	diets, err := c.client.ListDiets(r.Context())
	if err != nil {
		c.logger.Error("failed to list diets", "error", err)
		data.Error = backendMessage(err)
		c.renderDietsList(w, data)
		return
	}

	for _, d := range diets {
		data.Diets = append(data.Diets, dietRow{
			ID:     d.ID,
			Title:  d.DisplayTitle(),
			Status: d.DisplayStatus(),
			Date:   formatDate(d.DisplayDate()),
		})
	}
	c.renderDietsList(w, data)
}

// handleDietNewPage renders the intake form.
func (c *Console) handleDietNewPage(w http.ResponseWriter, r *http.Request) {
	c.renderDietNew(w, dietNewData{
		Title: "New Diet",
		User:  c.currentUser(),
		Form:  intakeForm{},
	})
}

// handleDietGenerate validates the intake and asks the backend for a plan.
func (c *Console) handleDietGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderDietNew(w, dietNewData{
			Title: "New Diet",
			User:  c.currentUser(),
			Error: "Invalid form data",
			Form:  intakeForm{},
		})
		return
	}

	form := intakeFormFromRequest(r)
	if form.City == "" && form.Pincode == "" {
		c.renderDietNew(w, dietNewData{
			Title: "New Diet",
			User:  c.currentUser(),
			Error: "Provide a city or a pincode",
			Form:  form,
		})
		return
	}

	diet, err := c.client.GenerateDiet(r.Context(), form.toRequest())
	if err != nil {
		c.logger.Error("diet generation failed", "error", err)
		c.renderDietNew(w, dietNewData{
			Title: "New Diet",
			User:  c.currentUser(),
			Error: backendMessage(err),
			Form:  form,
		})
		return
	}

	c.logger.Info("diet generated", "diet_id", diet.ID)
	http.Redirect(w, r, "/diets/"+diet.ID, http.StatusSeeOther)
}

// handleDietDetail renders a single plan with its days, notes, and snapshot.
func (c *Console) handleDietDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	diet, err := c.client.GetDiet(r.Context(), id)
	if err != nil {
		c.renderDietError(w, "Diet", backendMessage(err), err)
		return
	}

	plan := diet.Plan()
	c.renderDietDetail(w, dietDetailData{
		Title:    diet.DisplayTitle(),
		User:     c.currentUser(),
		Diet:     diet,
		Plan:     plan,
		Notes:    renderNotes(plan.Notes),
		Snapshot: diet.Snapshot(),
		Date:     formatDate(diet.DisplayDate()),
		ShareURL: r.URL.Query().Get("share_url"),
		RawJSON:  prettyJSON(diet.DietData),
	})
}

// handleDietEditPage renders the edit form with the raw plan JSON.
func (c *Console) handleDietEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	diet, err := c.client.GetDiet(r.Context(), id)
	if err != nil {
		c.renderDietError(w, "Edit Diet", backendMessage(err), err)
		return
	}

	c.renderDietEdit(w, dietEditData{
		Title:    "Edit Diet",
		User:     c.currentUser(),
		DietID:   diet.ID,
		PlanName: diet.DisplayTitle(),
		Status:   diet.DisplayStatus(),
		DietJSON: prettyJSON(diet.DietData),
	})
}

// handleDietUpdate validates the edited JSON and saves the plan.
func (c *Console) handleDietUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	data := dietEditData{
		Title:    "Edit Diet",
		User:     c.currentUser(),
		DietID:   id,
		PlanName: r.FormValue("title"),
		Status:   r.FormValue("status"),
		DietJSON: r.FormValue("diet_data"),
	}

	var dietData json.RawMessage
	if trimmed := strings.TrimSpace(data.DietJSON); trimmed != "" {
		if !json.Valid([]byte(trimmed)) {
			data.Error = "Diet JSON is invalid."
			c.renderDietEdit(w, data)
			return
		}
		dietData = json.RawMessage(trimmed)
	}

	_, err := c.client.UpdateDiet(r.Context(), id, api.UpdateRequest{
		Title:    data.PlanName,
		Status:   data.Status,
		DietData: dietData,
	})
	if err != nil {
		c.logger.Error("failed to update diet", "error", err, "diet_id", id)
		data.Error = backendMessage(err)
		c.renderDietEdit(w, data)
		return
	}

	http.Redirect(w, r, "/diets/"+id, http.StatusSeeOther)
}

// handleDietShare mints a public link and shows it on the detail page.
func (c *Console) handleDietShare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	resp, err := c.client.CreateShareLink(r.Context(), id)
	if err != nil || resp.ShareURL == "" {
		c.logger.Error("failed to create share link", "error", err, "diet_id", id)
		http.Redirect(w, r, "/diets/"+id, http.StatusSeeOther)
		return
	}

	shareURL := c.client.ResolveURL(resp.ShareURL)
	http.Redirect(w, r, "/diets/"+id+"?share_url="+url.QueryEscape(shareURL), http.StatusSeeOther)
}

// handleDietPDF generates the PDF export and streams it back as a download.
// If the generated file cannot be fetched, the browser is pointed at the file
// URL directly.
func (c *Console) handleDietPDF(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	diet, err := c.client.GetDiet(r.Context(), id)
	if err != nil {
		c.renderDietError(w, "Diet", backendMessage(err), err)
		return
	}

	resp, err := c.client.GeneratePDF(r.Context(), id)
	if err != nil || resp.FileURL == "" {
		c.logger.Error("pdf generation failed", "error", err, "diet_id", id)
		http.Redirect(w, r, "/diets/"+id, http.StatusSeeOther)
		return
	}

	fileURL := c.client.ResolveURL(resp.FileURL)
	download, err := c.client.Download(r.Context(), fileURL)
	if err != nil {
		// Let the browser fetch it directly instead of failing the export.
		c.logger.Warn("pdf fetch failed, redirecting to file", "error", err, "diet_id", id)
		http.Redirect(w, r, fileURL, http.StatusSeeOther)
		return
	}
	defer download.Body.Close()

	filename := pdfFileName(diet.Title)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if length := download.ContentLength; length > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(length, 10))
	}
	if _, err := io.Copy(w, download.Body); err != nil {
		c.logger.Error("pdf stream interrupted", "error", err, "diet_id", id)
	}
}

// handleDietDelete removes a plan and returns to the list.
func (c *Console) handleDietDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := c.client.DeleteDiet(r.Context(), id); err != nil {
		c.logger.Error("failed to delete diet", "error", err, "diet_id", id)
		http.Redirect(w, r, "/diets?notice="+url.QueryEscape(backendMessage(err)), http.StatusSeeOther)
		return
	}

	c.logger.Info("diet deleted", "diet_id", id)
	http.Redirect(w, r, "/diets?notice="+url.QueryEscape("Diet deleted"), http.StatusSeeOther)
}

// pdfFileName builds the download name from a plan title. Path and drive
// separators are flattened so the name is safe on every platform.
func pdfFileName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = pdfFallbackName
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-")
	return replacer.Replace(name) + ".pdf"
}

// intakeForm mirrors the generation form so failed submissions re-render
// with the user's values intact.
type intakeForm struct {
	PlanTitle     string
	Age           string
	Gender        string
	HeightCM      string
	WeightKG      string
	Smoker        bool
	Alcohol       string
	ActivityLevel string
	Goal          string
	City          string
	Pincode       string
	DietType      string
	Cuisines      string
	SpiceLevel    string
	Staples       string
	Allergies     string
	Dislikes      string
	Religious     string
}

func intakeFormFromRequest(r *http.Request) intakeForm {
	return intakeForm{
		PlanTitle:     r.FormValue("title"),
		Age:           r.FormValue("age"),
		Gender:        r.FormValue("gender"),
		HeightCM:      r.FormValue("height_cm"),
		WeightKG:      r.FormValue("weight_kg"),
		Smoker:        r.FormValue("smoker") != "",
		Alcohol:       r.FormValue("alcohol"),
		ActivityLevel: r.FormValue("activity_level"),
		Goal:          r.FormValue("goal"),
		City:          strings.TrimSpace(r.FormValue("city")),
		Pincode:       strings.TrimSpace(r.FormValue("pincode")),
		DietType:      r.FormValue("diet_type"),
		Cuisines:      r.FormValue("preferred_cuisines"),
		SpiceLevel:    r.FormValue("spice_level"),
		Staples:       r.FormValue("staples"),
		Allergies:     r.FormValue("allergies"),
		Dislikes:      r.FormValue("dislikes"),
		Religious:     r.FormValue("religious_constraints"),
	}
}

// toRequest converts the form into the generation payload. Numeric fields
// that fail to parse are simply omitted; the backend applies its own rules.
func (f intakeForm) toRequest() api.GenerateRequest {
	profile := api.Profile{
		Gender:        f.Gender,
		Smoker:        f.Smoker,
		Alcohol:       f.Alcohol,
		ActivityLevel: f.ActivityLevel,
		Goal:          f.Goal,
	}
	if age, err := strconv.Atoi(strings.TrimSpace(f.Age)); err == nil {
		profile.Age = &age
	}
	if h, err := strconv.ParseFloat(strings.TrimSpace(f.HeightCM), 64); err == nil {
		profile.HeightCM = &h
	}
	if wt, err := strconv.ParseFloat(strings.TrimSpace(f.WeightKG), 64); err == nil {
		profile.WeightKG = &wt
	}

	return api.GenerateRequest{
		Title:    f.PlanTitle,
		Profile:  profile,
		Location: api.Location{City: f.City, Pincode: f.Pincode},
		Preferences: api.Preferences{
			DietType:             f.DietType,
			PreferredCuisines:    splitList(f.Cuisines),
			SpiceLevel:           f.SpiceLevel,
			Staples:              f.Staples,
			Allergies:            splitList(f.Allergies),
			Dislikes:             splitList(f.Dislikes),
			ReligiousConstraints: splitList(f.Religious),
		},
	}
}

// splitList turns a comma separated field into trimmed entries, dropping
// empties.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
