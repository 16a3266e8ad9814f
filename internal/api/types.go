// ABOUTME: Record types for backend payloads with lenient optional-field access
// ABOUTME: The backend owns these shapes; the console only defaults on display

package api

import "encoding/json"

// Diet statuses as the backend reports them.
const (
	DietStatusDraft     = "draft"
	DietStatusFinalized = "finalized"
)

// Diet is one stored diet plan. Every field except ID is optional and
// backend-owned; the console never validates the internal structure.
type Diet struct {
	ID               string          `json:"id"`
	UserID           json.RawMessage `json:"user_id,omitempty"` // string or number upstream
	Title            string          `json:"title,omitempty"`
	Status           string          `json:"status,omitempty"`
	GenerationMethod string          `json:"generation_method,omitempty"`
	GenerationStatus string          `json:"generation_status,omitempty"`
	LLMProvider      string          `json:"llm_provider,omitempty"`
	LLMModel         string          `json:"llm_model,omitempty"`
	PromptVersion    string          `json:"prompt_version,omitempty"`
	ProfileSnapshot  json.RawMessage `json:"profile_snapshot,omitempty"`
	DietData         json.RawMessage `json:"diet_data,omitempty"`
	GenerationError  string          `json:"generation_error,omitempty"`
	GeneratedAt      string          `json:"generated_at,omitempty"`
	CreatedAt        string          `json:"created_at,omitempty"`
	UpdatedAt        string          `json:"updated_at,omitempty"`
}

// DisplayTitle returns the title with the fixed fallback for untitled plans.
func (d Diet) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return "Untitled Diet"
}

// DisplayStatus returns the status shown in lists: status, then the
// generation status, then "draft".
func (d Diet) DisplayStatus() string {
	if d.Status != "" {
		return d.Status
	}
	if d.GenerationStatus != "" {
		return d.GenerationStatus
	}
	return DietStatusDraft
}

// DisplayDate returns the timestamp shown in lists, preferring created_at.
func (d Diet) DisplayDate() string {
	if d.CreatedAt != "" {
		return d.CreatedAt
	}
	return d.GeneratedAt
}

// Plan decodes diet_data into its typed shape. Missing or malformed data
// yields the zero plan; display defaults handle the rest.
func (d Diet) Plan() DietPlan {
	var plan DietPlan
	if len(d.DietData) > 0 {
		_ = json.Unmarshal(d.DietData, &plan)
	}
	return plan
}

// Snapshot decodes profile_snapshot the same leniently as Plan.
func (d Diet) Snapshot() ProfileSnapshot {
	var snap ProfileSnapshot
	if len(d.ProfileSnapshot) > 0 {
		_ = json.Unmarshal(d.ProfileSnapshot, &snap)
	}
	return snap
}

// DietPlan is the generated plan body stored under diet_data.
type DietPlan struct {
	Summary MacroSummary `json:"summary"`
	Days    []DayPlan    `json:"days,omitempty"`
	Notes   []string     `json:"notes,omitempty"`
}

// MacroSummary holds plan-level macro totals.
type MacroSummary struct {
	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
}

// DayPlan is one day of meals.
type DayPlan struct {
	Day   int    `json:"day,omitempty"`
	Label string `json:"label,omitempty"`
	Meals []Meal `json:"meals,omitempty"`
}

// DisplayLabel returns the day heading with its fallback.
func (d DayPlan) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return "Day plan"
}

// Meal is a single meal entry within a day.
type Meal struct {
	Type     string      `json:"type,omitempty"`
	Title    string      `json:"title,omitempty"`
	Portions []Portion   `json:"portions,omitempty"`
	Macros   *MealMacros `json:"macros,omitempty"`
}

// Portion is one item/quantity line within a meal.
type Portion struct {
	Item string `json:"item,omitempty"`
	Qty  string `json:"qty,omitempty"`
}

// MealMacros holds per-meal macro counts.
type MealMacros struct {
	Cal float64 `json:"cal,omitempty"`
	P   float64 `json:"p,omitempty"`
	C   float64 `json:"c,omitempty"`
	F   float64 `json:"f,omitempty"`
}

// ProfileSnapshot is the intake captured at generation time.
type ProfileSnapshot struct {
	Profile     Profile     `json:"profile"`
	Location    Location    `json:"location"`
	Preferences Preferences `json:"preferences"`
}

// Profile describes the patient the plan was generated for.
type Profile struct {
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	HeightCM      *float64 `json:"height_cm,omitempty"`
	WeightKG      *float64 `json:"weight_kg,omitempty"`
	Smoker        bool     `json:"smoker"`
	Alcohol       string   `json:"alcohol,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Goal          string   `json:"goal,omitempty"`
}

// Location narrows the regional food context; the backend requires at
// least one of the two fields.
type Location struct {
	City    string `json:"city,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// Preferences captures cuisine and restriction inputs.
type Preferences struct {
	DietType             string   `json:"diet_type,omitempty"`
	PreferredCuisines    []string `json:"preferred_cuisines,omitempty"`
	SpiceLevel           string   `json:"spice_level,omitempty"`
	Staples              string   `json:"staples,omitempty"`
	Allergies            []string `json:"allergies,omitempty"`
	Dislikes             []string `json:"dislikes,omitempty"`
	ReligiousConstraints []string `json:"religious_constraints,omitempty"`
}

// GenerateRequest is the intake payload for diet generation.
type GenerateRequest struct {
	Title       string      `json:"title,omitempty"`
	Profile     Profile     `json:"profile"`
	Location    Location    `json:"location"`
	Preferences Preferences `json:"preferences"`
}

// UpdateRequest is the editable subset of a diet plan.
type UpdateRequest struct {
	Title    string          `json:"title"`
	Status   string          `json:"status"`
	DietData json.RawMessage `json:"diet_data"`
}

// LoginResponse is the backend's answer to login; the id doubles as the
// session identity.
type LoginResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Role      *int   `json:"role,omitempty"`
	Status    *int   `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SignupRequest is the account creation payload.
type SignupRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AcceptTnc bool   `json:"acceptTnc"`
}

// SignupResponse carries the backend's acknowledgement message.
type SignupResponse struct {
	Message string `json:"message,omitempty"`
}

// DashboardSummary is the date-ranged analytics payload. The console reads
// a couple of totals and otherwise passes the body through for display.
type DashboardSummary struct {
	Total               *int `json:"total,omitempty"`
	TotalDiets          *int `json:"total_diets,omitempty"`
	TotalDietsGenerated *int `json:"total_diets_generated,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON keeps the raw payload alongside the typed totals.
func (s *DashboardSummary) UnmarshalJSON(b []byte) error {
	type summary DashboardSummary
	var decoded summary
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*s = DashboardSummary(decoded)
	s.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Raw returns the summary payload exactly as the backend sent it.
func (s *DashboardSummary) Raw() json.RawMessage {
	return s.raw
}

// TotalGenerated returns the headline count: total_diets_generated,
// then total_diets, then total, then zero.
func (s *DashboardSummary) TotalGenerated() int {
	if s.TotalDietsGenerated != nil {
		return *s.TotalDietsGenerated
	}
	if s.TotalDiets != nil {
		return *s.TotalDiets
	}
	if s.Total != nil {
		return *s.Total
	}
	return 0
}

// PDFResponse carries the URL of a generated PDF export.
type PDFResponse struct {
	FileURL string `json:"file_url,omitempty"`
}

// ShareResponse carries the public share URL for a plan.
type ShareResponse struct {
	ShareURL string `json:"share_url,omitempty"`
}
