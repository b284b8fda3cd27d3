package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/internal/utils"
	"github.com/periodicapp/periodic/models"
)

// defaultLiquidCelsius is the temperature assumed by the liquid query when
// the request carries no celsius parameter.
const defaultLiquidCelsius = 500.0

func (h *Handler) querySymbols(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	symbols, err := h.services.ElementService.Symbols(ctx)
	if err != nil {
		log.Err(err).Msg("listing symbols failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, symbols, http.StatusOK)
}

func (h *Handler) queryLiquid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	celsius := defaultLiquidCelsius
	if raw := r.URL.Query().Get("celsius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Debug().Str("celsius", raw).Msg("non-numeric temperature")
			utils.WriteJSON(w, models.ValidationResponse{Validation: "celsius.number"}, http.StatusUnprocessableEntity)
			return
		}
		celsius = parsed
	}

	liquids, err := h.services.ElementService.LiquidAt(ctx, celsius)
	if err != nil {
		log.Err(err).Msg("listing liquid elements failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, liquids, http.StatusOK)
}

func (h *Handler) queryRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	record, err := h.services.ElementService.WidestLiquidRange(ctx)
	if err != nil {
		if errors.Is(err, store.ErrElementNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("finding widest liquid range failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
