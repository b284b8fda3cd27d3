package service

import (
	"context"

	"github.com/periodicapp/periodic/models"
)

// AuthService manages user accounts and credential verification.
type AuthService interface {
	// Register validates the raw registration payload, hashes the password
	// and creates the account. A rejected payload is reported as a
	// *validators.Violation error.
	Register(ctx context.Context, payload map[string]any) (models.User, error)

	// VerifyCredentials checks the username/password pair against the
	// stored account. An unknown username and a wrong password both return
	// ErrInvalidCredentials; the two cases are indistinguishable to the
	// caller and take comparable time.
	VerifyCredentials(ctx context.Context, username, password string) (models.SessionUser, error)
}

// ElementService manages the periodic table and its analytical queries.
type ElementService interface {
	// List returns every element ordered by atomic number.
	List(ctx context.Context) ([]models.Element, error)

	// Create validates the raw element payload and persists it. A rejected
	// payload is reported as a *validators.Violation error.
	Create(ctx context.Context, payload map[string]any) (models.Element, error)

	// Update merges the valid fields of payload over the stored element and
	// persists the result. Fields that are absent or carry the wrong type
	// keep their stored value. Returns store.ErrElementNotFound when no
	// element has the given number.
	Update(ctx context.Context, number int, payload map[string]any) (models.Element, error)

	// Delete removes the element with the given atomic number. Returns
	// store.ErrElementNotFound when no such element exists.
	Delete(ctx context.Context, number int) error

	// Symbols returns the symbol and number of every element.
	Symbols(ctx context.Context) ([]models.ElementSymbol, error)

	// LiquidAt returns the elements that are liquid at the given
	// temperature in degrees Celsius.
	LiquidAt(ctx context.Context, celsius float64) ([]models.LiquidElement, error)

	// WidestLiquidRange returns the element with the largest liquid
	// temperature span. Returns store.ErrElementNotFound when the table
	// holds no element with both temperatures known.
	WidestLiquidRange(ctx context.Context) (models.ElementRecord, error)
}
