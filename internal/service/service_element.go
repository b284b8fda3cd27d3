package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/internal/store"
	"github.com/periodicapp/periodic/internal/validators"
	"github.com/periodicapp/periodic/models"
)

// elementService is the concrete implementation of ElementService. It owns
// the element rule table and the partial-update merge; persistence is
// delegated to an ElementRepository.
type elementService struct {
	elementRepository store.ElementRepository
	logger            *logger.Logger
}

// NewElementService constructs an ElementService wired to the given
// ElementRepository.
func NewElementService(elementRepository store.ElementRepository, logger *logger.Logger) ElementService {
	return &elementService{
		elementRepository: elementRepository,
		logger:            logger,
	}
}

// creationRules returns the ordered rule table for a new element. Field
// order follows the payload contract: number first (its uniqueness lookup
// runs after its local checks), then name, symbol, mass, synthetic and the
// two nullable temperatures.
func (e *elementService) creationRules() []validators.Rule {
	return []validators.Rule{
		{
			Field:    "number",
			Required: true,
			Kind:     validators.Integer,
			Min:      validators.Min(1),
			Unique: func(ctx context.Context, value any) (bool, error) {
				number, _ := value.(int)
				return e.elementRepository.ElementExists(ctx, number)
			},
		},
		{Field: "name", Required: true, Kind: validators.String},
		{Field: "symbol", Required: true, Kind: validators.String},
		{Field: "mass", Required: true, Kind: validators.Number, Min: validators.Min(0)},
		{Field: "synthetic", Required: true, Kind: validators.Boolean},
		{Field: "melting", Required: true, Kind: validators.NullableNumber},
		{Field: "boiling", Required: true, Kind: validators.NullableNumber},
	}
}

// List returns every element ordered by atomic number.
func (e *elementService) List(ctx context.Context) ([]models.Element, error) {
	elements, err := e.elementRepository.ListElements(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing elements failed: %w", err)
	}
	return elements, nil
}

// Create validates the raw element payload and persists it.
//
// A rejected payload is returned as a *validators.Violation. A unique
// violation reported by the store despite the pipeline pre-check maps to
// the same "number.duplicate" violation the pre-check would have produced.
func (e *elementService) Create(ctx context.Context, payload map[string]any) (models.Element, error) {
	log := logger.FromContext(ctx)

	fields, err := validators.Run(ctx, payload, e.creationRules())
	if err != nil {
		return models.Element{}, err
	}

	element := models.Element{
		Number:    fields.Int("number"),
		Name:      fields.String("name"),
		Symbol:    fields.String("symbol"),
		Mass:      fields.Float("mass"),
		Synthetic: fields.Bool("synthetic"),
		Melting:   fields.NullableFloat("melting"),
		Boiling:   fields.NullableFloat("boiling"),
	}

	created, err := e.elementRepository.CreateElement(ctx, element)
	if err != nil {
		if errors.Is(err, store.ErrElementAlreadyExists) {
			return models.Element{}, validators.Duplicate("number")
		}
		log.Err(err).Str("func", "*elementService.Create").Msg("error: element creation failed")
		return models.Element{}, fmt.Errorf("element creation failed: %w", err)
	}

	return created, nil
}

// Update merges the payload over the stored element and writes it back.
//
// The update is permissive where creation is strict: a field only replaces
// the stored value when it is present, carries the expected type, and
// satisfies the column's range (mass never goes negative); anything else
// keeps the stored value. The atomic number itself is never changed.
// Returns store.ErrElementNotFound when no element has the given number.
func (e *elementService) Update(ctx context.Context, number int, payload map[string]any) (models.Element, error) {
	log := logger.FromContext(ctx)

	element, err := e.elementRepository.GetElementByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrElementNotFound) {
			return models.Element{}, err
		}
		log.Err(err).Str("func", "*elementService.Update").Msg("error: element lookup failed")
		return models.Element{}, fmt.Errorf("element lookup failed: %w", err)
	}

	mergeString(payload, "name", &element.Name)
	mergeString(payload, "symbol", &element.Symbol)
	if mass, ok := payload["mass"].(float64); ok && mass >= 0 {
		element.Mass = mass
	}
	mergeBool(payload, "synthetic", &element.Synthetic)
	mergeNullableNumber(payload, "melting", &element.Melting)
	mergeNullableNumber(payload, "boiling", &element.Boiling)

	updated, err := e.elementRepository.UpdateElement(ctx, element)
	if err != nil {
		if errors.Is(err, store.ErrElementNotFound) {
			return models.Element{}, err
		}
		log.Err(err).Str("func", "*elementService.Update").Msg("error: element update failed")
		return models.Element{}, fmt.Errorf("element update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the element with the given atomic number.
func (e *elementService) Delete(ctx context.Context, number int) error {
	log := logger.FromContext(ctx)

	if err := e.elementRepository.DeleteElement(ctx, number); err != nil {
		if errors.Is(err, store.ErrElementNotFound) {
			return err
		}
		log.Err(err).Str("func", "*elementService.Delete").Msg("error: element deletion failed")
		return fmt.Errorf("element deletion failed: %w", err)
	}

	return nil
}

// Symbols returns the symbol and number of every element.
func (e *elementService) Symbols(ctx context.Context) ([]models.ElementSymbol, error) {
	symbols, err := e.elementRepository.ListSymbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing symbols failed: %w", err)
	}
	return symbols, nil
}

// LiquidAt returns the elements that are liquid at the given temperature.
func (e *elementService) LiquidAt(ctx context.Context, celsius float64) ([]models.LiquidElement, error) {
	liquids, err := e.elementRepository.ListLiquidAt(ctx, celsius)
	if err != nil {
		return nil, fmt.Errorf("listing liquid elements failed: %w", err)
	}
	return liquids, nil
}

// WidestLiquidRange returns the element with the largest liquid span.
func (e *elementService) WidestLiquidRange(ctx context.Context) (models.ElementRecord, error) {
	record, err := e.elementRepository.FindWidestLiquidRange(ctx)
	if err != nil {
		if errors.Is(err, store.ErrElementNotFound) {
			return models.ElementRecord{}, err
		}
		return models.ElementRecord{}, fmt.Errorf("finding widest liquid range failed: %w", err)
	}
	return record, nil
}

// mergeString replaces *dst with the payload value when it is a string.
func mergeString(payload map[string]any, field string, dst *string) {
	if s, ok := payload[field].(string); ok {
		*dst = s
	}
}

// mergeBool replaces *dst with the payload value when it is a boolean.
func mergeBool(payload map[string]any, field string, dst *bool) {
	if b, ok := payload[field].(bool); ok {
		*dst = b
	}
}

// mergeNullableNumber replaces *dst when the payload carries a number or an
// explicit null for the field. An absent field keeps the stored value; a
// present null clears it.
func mergeNullableNumber(payload map[string]any, field string, dst **float64) {
	raw, present := payload[field]
	if !present {
		return
	}
	if raw == nil {
		*dst = nil
		return
	}
	if f, ok := raw.(float64); ok {
		*dst = &f
	}
}
