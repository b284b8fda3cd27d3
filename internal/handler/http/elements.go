package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/utils"
	"github.com/periodicapp/periodic/internal/validators"
	"github.com/periodicapp/periodic/models"
)

func (h *Handler) listElements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	elements, err := h.services.ElementService.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing elements failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, elements, http.StatusOK)
}

func (h *Handler) createElement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ElementService.Create(ctx, payload)
	if err != nil {
		if violation := validators.AsViolation(err); violation != nil {
			log.Debug().Str("code", violation.Code()).Msg("element rejected")
			utils.WriteJSON(w, models.ValidationResponse{Validation: violation.Code()}, http.StatusUnprocessableEntity)
			return
		}
		log.Err(err).Msg("unexpected error occurred during element creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateElement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	number, ok := h.elementNumber(w, r)
	if !ok {
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ElementService.Update(ctx, number, payload)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("number", number).Int("status", status).Msg("element update failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteElement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	number, ok := h.elementNumber(w, r)
	if !ok {
		return
	}

	if err := h.services.ElementService.Delete(ctx, number); err != nil {
		status := statusFromError(err)
		log.Err(err).Int("number", number).Int("status", status).Msg("element deletion failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// elementNumber parses the {number} URL parameter. A value that is not an
// integer cannot address any element, so it is reported as 404 rather than
// as a validation failure.
func (h *Handler) elementNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return 0, false
	}
	return number, true
}
