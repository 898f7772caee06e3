// Package filter folds optional equality and range constraints into a single
// parameterized SQL predicate. Absent constraints contribute nothing and all
// present ones are joined with AND.
package filter

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Range is an inclusive bound. A nil side is unbounded.
type Range[T any] struct {
	From *T
	To   *T
}

func (r Range[T]) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Builder accumulates predicates in call order.
type Builder struct {
	clauses []string
	args    []any
	offset  int
}

func New() *Builder {
	return &Builder{}
}

// StartAt shifts placeholder numbering for queries that already bind n args.
func (b *Builder) StartAt(n int) *Builder {
	b.offset = n
	return b
}

func (b *Builder) add(column, op string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s %s $%d", quote(column), op, b.offset+len(b.args)))
}

func (b *Builder) Empty() bool {
	return len(b.clauses) == 0
}

// Build returns the predicate without the WHERE keyword and its arguments.
func (b *Builder) Build() (string, []any) {
	return strings.Join(b.clauses, " AND "), b.args
}

// Where is Build with a leading " WHERE " when anything was added.
func (b *Builder) Where() (string, []any) {
	if b.Empty() {
		return "", nil
	}
	pred, args := b.Build()
	return " WHERE " + pred, args
}

// Eq adds column = value when value is non-nil.
func Eq[T any](b *Builder, column string, value *T) *Builder {
	if value != nil {
		b.add(column, "=", *value)
	}
	return b
}

// EqString adds column = value for non-empty strings.
func EqString(b *Builder, column, value string) *Builder {
	if value != "" {
		b.add(column, "=", value)
	}
	return b
}

// Between adds column >= from and/or column <= to.
func Between[T any](b *Builder, column string, r Range[T]) *Builder {
	if r.From != nil {
		b.add(column, ">=", *r.From)
	}
	if r.To != nil {
		b.add(column, "<=", *r.To)
	}
	return b
}

func quote(column string) string {
	return pgx.Identifier(strings.Split(column, ".")).Sanitize()
}
