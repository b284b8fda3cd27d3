package store

import (
	"context"

	"github.com/periodicapp/periodic/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists on a username
	// collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves an account by its unique username.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UsernameExists reports whether an account with the given username
	// already exists. Used by the validation pipeline as a pre-check; the
	// unique constraint enforced by CreateUser remains the source of truth.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// ElementRepository is the persistence contract for the periodic table.
type ElementRepository interface {
	CreateElement(ctx context.Context, element models.Element) (models.Element, error)
	GetElementByNumber(ctx context.Context, number int) (models.Element, error)
	ElementExists(ctx context.Context, number int) (bool, error)
	ListElements(ctx context.Context) ([]models.Element, error)
	UpdateElement(ctx context.Context, element models.Element) (models.Element, error)
	DeleteElement(ctx context.Context, number int) error

	// ListSymbols returns every element's symbol and atomic number,
	// ordered by symbol.
	ListSymbols(ctx context.Context) ([]models.ElementSymbol, error)

	// ListLiquidAt returns the elements that are liquid at the given
	// temperature, i.e. melting <= celsius <= boiling.
	ListLiquidAt(ctx context.Context, celsius float64) ([]models.LiquidElement, error)

	// FindWidestLiquidRange returns the element with the largest
	// boiling - melting difference. Returns ErrElementNotFound when the
	// table holds no element with both temperatures known.
	FindWidestLiquidRange(ctx context.Context) (models.ElementRecord, error)
}
