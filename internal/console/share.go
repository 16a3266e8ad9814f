// ABOUTME: Public share page reachable without a session
// ABOUTME: Renders a read-only view of a plan through its share token

package console

import "net/http"

// handleSharedDiet renders a shared plan for anonymous viewers.
func (c *Console) handleSharedDiet(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	diet, err := c.client.GetSharedDiet(r.Context(), token)
	if err != nil {
		c.renderSharedError(w, backendMessage(err))
		return
	}

	plan := diet.Plan()
	c.renderSharedDiet(w, sharedDietData{
		Title: diet.DisplayTitle(),
		Diet:  diet,
		Plan:  plan,
		Notes: renderNotes(plan.Notes),
		Date:  formatDate(diet.DisplayDate()),
	})
}
