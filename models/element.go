package models

// Element is a single row of the periodic table.
//
// Melting and Boiling are pointers because some elements (and all freshly
// synthesized ones) have no measured phase-transition temperatures; a nil
// value is serialized as JSON null, matching the wire contract.
type Element struct {
	// Number is the atomic number. It is the primary key of the elements
	// table and must be a positive integer.
	Number int `json:"number"`

	// Name is the element name, e.g. "Hydrogen".
	Name string `json:"name"`

	// Symbol is the one- or two-letter chemical symbol, e.g. "H".
	Symbol string `json:"symbol"`

	// Mass is the standard atomic weight. Never negative.
	Mass float64 `json:"mass"`

	// Synthetic reports whether the element does not occur naturally.
	Synthetic bool `json:"synthetic"`

	// Melting is the melting point in degrees Celsius, if known.
	Melting *float64 `json:"melting"`

	// Boiling is the boiling point in degrees Celsius, if known.
	Boiling *float64 `json:"boiling"`
}

// TableName returns the name of the database table
// associated with the Element model.
func (e Element) TableName() string {
	return "elements"
}

// ElementSymbol is the projection returned by the symbols query:
// every element's symbol with its atomic number, ordered by symbol.
type ElementSymbol struct {
	Symbol string `json:"symbol"`
	Number int    `json:"number"`
}

// LiquidElement is the projection returned by the liquid-range query:
// elements that are liquid at the requested temperature.
type LiquidElement struct {
	Name    string   `json:"name"`
	Melting *float64 `json:"melting"`
	Boiling *float64 `json:"boiling"`
}

// ElementRecord is the projection returned by the record query:
// the element with the widest liquid temperature range.
type ElementRecord struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
