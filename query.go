package pagequery

import (
	"database/sql/driver"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query is the immutable description produced by Builder.Build.
type Query[T any] struct {
	conditions Conditions
	sort       Orderings
	joins      []string
}

// Conditions returns a copy of the query conditions.
func (q Query[T]) Conditions() Conditions {
	return slices.Clone(q.conditions)
}

// Sort returns a copy of the query orderings.
func (q Query[T]) Sort() Orderings {
	return slices.Clone(q.sort)
}

// Joins returns a copy of the joined relation names.
func (q Query[T]) Joins() []string {
	return slices.Clone(q.joins)
}

// Apply applies joins, conditions and orderings to a gorm query. It has the
// scope signature and can be passed to (*gorm.DB).Scopes.
func (q Query[T]) Apply(db *gorm.DB) *gorm.DB {
	return q.sort.Apply(q.applyFilters(db))
}

// applyFilters applies joins and conditions, leaving the ordering out.
func (q Query[T]) applyFilters(db *gorm.DB) *gorm.DB {
	for _, relation := range q.joins {
		db = db.Joins(relation)
	}

	if len(q.conditions) == 0 {
		return db
	}

	return db.Clauses(clause.Where{
		Exprs: q.conditions.toGORMExpressions(db.Dialector.Name()),
	})
}

// ToSQL returns the WHERE condition as an SQL string with "?" placeholders
// and the corresponding values.
//
// Usage:
//
//	where, args := q.ToSQL()
//	query := fmt.Sprintf("SELECT * FROM users WHERE %s", where)
func (q Query[T]) ToSQL() (string, []driver.Value) {
	return q.conditions.toSQLClause()
}
