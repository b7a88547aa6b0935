// Package elements provides lookups over the static periodic table.
package elements

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/elemquiz/internal/model"
)

// Count is the number of elements in the table.
const Count = len(table)

// All returns a copy of the table ordered by atomic number.
func All() []model.Element {
	out := make([]model.Element, len(table))
	copy(out, table[:])
	return out
}

// ByNumber returns the element with the given atomic number.
func ByNumber(number int) (model.Element, bool) {
	if number < 1 || number > len(table) {
		return model.Element{}, false
	}
	return table[number-1], true
}

// BySymbol returns the element with the given symbol, ignoring case and
// surrounding whitespace.
func BySymbol(symbol string) (model.Element, bool) {
	symbol = strings.TrimSpace(symbol)
	for _, e := range table {
		if strings.EqualFold(e.Symbol, symbol) {
			return e, true
		}
	}
	return model.Element{}, false
}

// ByName returns the element with the given name, ignoring case and
// surrounding whitespace.
func ByName(name string) (model.Element, bool) {
	name = strings.TrimSpace(name)
	for _, e := range table {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return model.Element{}, false
}

// Lookup resolves a query as an atomic number, then a symbol, then a name.
// Only exact matches are returned.
func Lookup(query string) (model.Element, bool) {
	query = strings.TrimSpace(query)
	if n, err := strconv.Atoi(query); err == nil {
		return ByNumber(n)
	}
	if e, ok := BySymbol(query); ok {
		return e, true
	}
	return ByName(query)
}
