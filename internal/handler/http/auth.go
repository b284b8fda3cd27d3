package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/service"
	"github.com/periodicapp/periodic/internal/utils"
	"github.com/periodicapp/periodic/internal/validators"
	"github.com/periodicapp/periodic/models"
)

// loginRequest is the expected login payload. Login is not run through the
// validation pipeline: any malformed pair is simply a failed credential
// check.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, payload)
	if err != nil {
		if violation := validators.AsViolation(err); violation != nil {
			log.Debug().Str("code", violation.Code()).Msg("registration rejected")
			utils.WriteJSON(w, models.ValidationResponse{Validation: violation.Code()}, http.StatusUnprocessableEntity)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registered.ID).Str("username", registered.Username).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{Username: registered.Username}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, verifyErr := h.services.AuthService.VerifyCredentials(ctx, req.Username, req.Password)

	// The session identifier is rotated on every login attempt, before the
	// credential verdict is inspected, so a pre-login cookie can never
	// survive into an authenticated session.
	cur, _ := utils.GetSessionFromContext(ctx)
	rec, err := h.sessions.Regenerate(ctx, w, cur)
	if err != nil {
		log.Err(err).Msg("regenerating session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if verifyErr != nil {
		if errors.Is(verifyErr, service.ErrInvalidCredentials) {
			log.Debug().Str("username", req.Username).Msg("invalid credentials")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		}
		log.Err(verifyErr).Msg("unexpected error occurred during credential verification")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := h.sessions.Authenticate(ctx, rec, user); err != nil {
		log.Err(err).Msg("persisting session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rec, _ := utils.GetSessionFromContext(ctx)

	if err := h.sessions.Destroy(ctx, w, rec); err != nil {
		log.Err(err).Msg("destroying session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
