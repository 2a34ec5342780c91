// Package query builds parameterized SQL for the inventory store.
//
// Statements use "?" for every bound item. Values are passed as-is; table
// and column names are passed as gorm clause.Table / clause.Column values so
// the active dialect quotes them when the statement is rendered. No caller
// input is ever concatenated into SQL text.
package query

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm/clause"
)

var (
	// ErrNoAssignments is returned when an update would set no columns.
	ErrNoAssignments = errors.New("no fields to update")
	// ErrInvalidIdentifier is returned for table or column names that are
	// not plain SQL identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

const maxIdentifierLength = 64

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// Query is a statement template and its positional arguments.
type Query struct {
	SQL  string
	Args []interface{}
	// Key names the generated primary key column of an INSERT.
	Key string
}

// Assignment is one "column = value" pair of an UPDATE.
type Assignment struct {
	Column string
	Value  interface{}
}

// Table binds a table name as an identifier.
func Table(name string) clause.Table {
	return clause.Table{Name: name}
}

// Aliased binds a table name with an alias.
func Aliased(name, alias string) clause.Table {
	return clause.Table{Name: name, Alias: alias}
}

// Column binds a column name, optionally qualified by a table or alias.
func Column(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// Contains wraps v for a substring LIKE comparison.
func Contains(v string) string {
	return "%" + v + "%"
}

// Ident validates a caller supplied table or column name. Dialect quoting
// splits on dots and treats quote characters inside a name its own way, so
// only plain identifiers are let through to it.
func Ident(name string) error {
	if len(name) == 0 || len(name) > maxIdentifierLength || !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

func args(items ...interface{}) []interface{} {
	return items
}
