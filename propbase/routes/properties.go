// propbase/routes/properties.go
package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"propbase/propbase/controllers"

	"github.com/go-chi/chi/v5"
)

func PropertyRoutes(ctrl *controllers.PropertyController) chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(methodNotAllowed)

	// Save property
	r.Post("/save_property", func(w http.ResponseWriter, r *http.Request) {
		var req controllers.SavePropertyInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		property, err := ctrl.SaveProperty(r.Context(), req)
		if err != nil {
			respondError(w, r, err, "Failed to save property. Please try again later.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"property": property,
		})
	})

	// Get property with its notes
	r.Get("/property", func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if idStr == "" || err != nil {
			writeError(w, http.StatusBadRequest, "Property ID is required")
			return
		}
		property, notes, err := ctrl.GetProperty(r.Context(), uint(id))
		if err != nil {
			respondError(w, r, err, "Failed to retrieve property data. Please try again later.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"property": property,
			"notes":    notes,
		})
	})

	// Add note to a property
	r.Post("/add_note", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PropertyID *uint  `json:"property_id"`
			Note       string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.PropertyID == nil {
			writeError(w, http.StatusBadRequest, "Property ID is required")
			return
		}
		note, err := ctrl.AddNote(r.Context(), *req.PropertyID, req.Note)
		if err != nil {
			respondError(w, r, err, "Failed to add note. Please try again later.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"note_id": note.ID,
		})
	})

	// List recent properties. This endpoint keeps its success flag in
	// the error envelope too.
	r.Get("/recent_properties", func(w http.ResponseWriter, r *http.Request) {
		properties, err := ctrl.RecentProperties(r.Context())
		if err != nil {
			respondRecentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"properties": properties,
		})
	})

	return r
}
