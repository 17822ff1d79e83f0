package pagequery

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Builder accumulates filter conditions, orderings and relation joins for
// the model T. Call Build to obtain the immutable Query consumed by Execute.
//
// Every method accepts a nil receiver and allocates a fresh Builder for it,
// so a chain may start from a nil *Builder[T].
//
// Usage:
//
//	res, err := pagequery.New[User]().
//		Add("name", req.Name, req.Name != "", pagequery.OperatorLikeRight).
//		Add("age", 18, true, pagequery.OperatorGTE).
//		SortBy("name", pagequery.DirectionASC).
//		LeftJoinAndSelect("Company").
//		Execute(ctx, db, req.Limit, req.Page)
type Builder[T any] struct {
	conditions Conditions
	sort       Orderings
	joins      []string
	errs       []error
}

// New returns a Builder sorted by DefaultSortColumn DESC.
func New[T any]() *Builder[T] {
	return &Builder[T]{
		sort: defaultOrderings(),
	}
}

// Add attaches Operator(column, value) as an AND condition when include is
// true. When include is false the call is a no-op.
//
// An invalid column, operator or value is not applied; the error is
// reported by Build.
func (b *Builder[T]) Add(column string, value any, include bool, operator Operator) *Builder[T] {
	if b == nil {
		b = New[T]()
	}

	if !include {
		return b
	}

	condition := Condition{
		Column:   column,
		Operator: operator,
		Value:    value,
	}
	if err := condition.validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("condition on '%s': %w", column, err))
		return b
	}

	b.conditions = append(b.conditions, condition)

	return b
}

// SortBy sets the direction for column. A column that is already sorted
// keeps its position; a new column is appended after the existing ones.
func (b *Builder[T]) SortBy(column string, direction Direction) *Builder[T] {
	return b.WithSort(OrderBy{Column: column, Direction: direction})
}

// WithSort applies SortBy to every ordering in turn.
func (b *Builder[T]) WithSort(orderBy ...OrderBy) *Builder[T] {
	if b == nil {
		b = New[T]()
	}

	for _, o := range orderBy {
		if err := o.validate(); err != nil {
			b.errs = append(b.errs, err)
			continue
		}

		b.sort = b.sort.upsert(o)
	}

	return b
}

// WithSubstitutedSort drops previous orderings, the default one included,
// and applies the provided ones.
func (b *Builder[T]) WithSubstitutedSort(orderBy ...OrderBy) *Builder[T] {
	if b == nil {
		b = New[T]()
	}

	b.sort = nil

	return b.WithSort(orderBy...)
}

// WithRequestSort replaces the current orderings, the default one included,
// with the requested ones. An empty request keeps the current orderings.
//
// It is meant for client-provided sorting, e.g. PageRequest.Orderings.
func (b *Builder[T]) WithRequestSort(orderBy ...OrderBy) *Builder[T] {
	if len(orderBy) == 0 {
		if b == nil {
			b = New[T]()
		}

		return b
	}

	return b.WithSubstitutedSort(orderBy...)
}

// LeftJoinAndSelect joins the relation of T named relation with a LEFT JOIN
// and selects its columns into the related struct field. Nested relations
// use dots ("Manager.Company").
//
// GORM aliases the joined table with the relation name, so conditions and
// orderings on its columns are written as "Relation.column", or
// "Manager.Company.column" for a nested relation.
func (b *Builder[T]) LeftJoinAndSelect(relation string) *Builder[T] {
	if b == nil {
		b = New[T]()
	}

	if err := validateColumn(relation); err != nil {
		b.errs = append(b.errs, fmt.Errorf("invalid relation: %w", err))
		return b
	}

	if !lo.Contains(b.joins, relation) {
		b.joins = append(b.joins, relation)
	}

	return b
}

// GetSort returns orderings that will be applied to the dataset.
func (b *Builder[T]) GetSort() Orderings {
	if b == nil {
		return nil
	}

	return b.sort
}

// GetConditions returns the accumulated conditions.
func (b *Builder[T]) GetConditions() Conditions {
	if b == nil {
		return nil
	}

	return b.conditions
}

// Build validates the accumulated state and returns a Query detached from
// the Builder: later calls on the Builder do not affect it.
func (b *Builder[T]) Build() (Query[T], error) {
	if b == nil {
		b = New[T]()
	}

	if len(b.errs) > 0 {
		return Query[T]{}, fmt.Errorf("cannot build query: %w", errors.Join(b.errs...))
	}

	return Query[T]{
		conditions: slices.Clone(b.conditions),
		sort:       slices.Clone(b.sort),
		joins:      slices.Clone(b.joins),
	}, nil
}

// Execute builds the query and runs it with Execute.
func (b *Builder[T]) Execute(ctx context.Context, db *gorm.DB, limit, page int) (*Result[T], error) {
	q, err := b.Build()
	if err != nil {
		return nil, err
	}

	return Execute(ctx, db, q, limit, page)
}
