package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/periodicapp/periodic/internal/logger"
	"github.com/periodicapp/periodic/models"
)

// elementRepository is the PostgreSQL-backed implementation of
// [ElementRepository] over the "elements" table.
type elementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewElementRepository constructs an [ElementRepository] backed by the
// provided database connection and logger.
func NewElementRepository(db *DB, logger *logger.Logger) ElementRepository {
	logger.Debug().Msg("creating element repository")
	return &elementRepository{
		db:     db,
		logger: logger,
	}
}

// CreateElement persists a new element and returns the canonical database
// representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the atomic number →
//     [ErrElementAlreadyExists]. This is the late failure path of a lost
//     uniqueness race: the pipeline pre-check may have passed already.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *elementRepository) CreateElement(ctx context.Context, element models.Element) (models.Element, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createElement,
		element.Number, element.Name, element.Symbol, element.Mass, element.Synthetic, element.Melting, element.Boiling)

	if err := scanElement(row, &element); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Element{}, ErrElementAlreadyExists
		case "":
			log.Err(err).Str("func", "*elementRepository.CreateElement").Msg("error: scanning error")
			return models.Element{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*elementRepository.CreateElement").Msg("error: unexpected DB error")
			return models.Element{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return element, nil
}

// GetElementByNumber retrieves the element with the given atomic number.
// Returns [ErrElementNotFound] when no such element exists.
func (r *elementRepository) GetElementByNumber(ctx context.Context, number int) (models.Element, error) {
	log := logger.FromContext(ctx)

	var element models.Element
	row := r.db.QueryRowContext(ctx, getElementByNumber, number)

	if err := scanElement(row, &element); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Element{}, ErrElementNotFound
		}
		log.Err(err).Str("func", "*elementRepository.GetElementByNumber").Msg("error: unexpected DB error")
		return models.Element{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return element, nil
}

// ElementExists reports whether an element with the given atomic number is
// already present. Pre-check only; the primary key constraint decides races.
func (r *elementRepository) ElementExists(ctx context.Context, number int) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, elementExists, number).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*elementRepository.ElementExists").Msg("error: unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// ListElements returns the full periodic table ordered by atomic number.
func (r *elementRepository) ListElements(ctx context.Context) ([]models.Element, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listElements)
	if err != nil {
		log.Err(err).Str("func", "*elementRepository.ListElements").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	elements := make([]models.Element, 0)
	for rows.Next() {
		var element models.Element
		if err := scanElement(rows, &element); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		elements = append(elements, element)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return elements, nil
}

// UpdateElement writes every mutable column of element back to the row
// identified by its atomic number and returns the stored representation.
//
// The UPDATE is built with squirrel so the column set stays declarative.
// Returns [ErrElementNotFound] when the targeted row does not exist.
func (r *elementRepository) UpdateElement(ctx context.Context, element models.Element) (models.Element, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(element.TableName()).
		Set("name", element.Name).
		Set("symbol", element.Symbol).
		Set("mass", element.Mass).
		Set("synthetic", element.Synthetic).
		Set("melting", element.Melting).
		Set("boiling", element.Boiling).
		Where(sq.Eq{"number": element.Number}).
		Suffix("RETURNING number, name, symbol, mass, synthetic, melting, boiling").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*elementRepository.UpdateElement").Msg("error: building update query")
		return models.Element{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Element
	if err := scanElement(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Element{}, ErrElementNotFound
		}
		log.Err(err).Str("func", "*elementRepository.UpdateElement").Msg("error: unexpected DB error")
		return models.Element{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteElement removes the element with the given atomic number.
// Returns [ErrElementNotFound] when no row was deleted.
func (r *elementRepository) DeleteElement(ctx context.Context, number int) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteElement, number)
	if err != nil {
		log.Err(err).Str("func", "*elementRepository.DeleteElement").Msg("error: unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrElementNotFound
	}

	return nil
}

// ListSymbols implements [ElementRepository].
func (r *elementRepository) ListSymbols(ctx context.Context) ([]models.ElementSymbol, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSymbols)
	if err != nil {
		log.Err(err).Str("func", "*elementRepository.ListSymbols").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	symbols := make([]models.ElementSymbol, 0)
	for rows.Next() {
		var symbol models.ElementSymbol
		if err := rows.Scan(&symbol.Symbol, &symbol.Number); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return symbols, nil
}

// ListLiquidAt implements [ElementRepository]. Elements without a known
// melting or boiling point never match: NULL comparisons are not true.
func (r *elementRepository) ListLiquidAt(ctx context.Context, celsius float64) ([]models.LiquidElement, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLiquidAt, celsius)
	if err != nil {
		log.Err(err).Str("func", "*elementRepository.ListLiquidAt").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	liquids := make([]models.LiquidElement, 0)
	for rows.Next() {
		var liquid models.LiquidElement
		if err := rows.Scan(&liquid.Name, &liquid.Melting, &liquid.Boiling); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		liquids = append(liquids, liquid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return liquids, nil
}

// FindWidestLiquidRange implements [ElementRepository].
func (r *elementRepository) FindWidestLiquidRange(ctx context.Context) (models.ElementRecord, error) {
	log := logger.FromContext(ctx)

	var record models.ElementRecord
	row := r.db.QueryRowContext(ctx, findWidestLiquidRange)

	if err := row.Scan(&record.Name, &record.Symbol); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ElementRecord{}, ErrElementNotFound
		}
		log.Err(err).Str("func", "*elementRepository.FindWidestLiquidRange").Msg("error: unexpected DB error")
		return models.ElementRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared column scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanElement(s scanner, element *models.Element) error {
	return s.Scan(
		&element.Number,
		&element.Name,
		&element.Symbol,
		&element.Mass,
		&element.Synthetic,
		&element.Melting,
		&element.Boiling,
	)
}
