package pagequery

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm/clause"
)

const postgresDialect = "postgres"

type (
	// Condition is a single filter predicate of the form
	// Operator(Column, Value).
	Condition struct {
		Column   string
		Operator Operator
		Value    any
	}

	// Conditions is a list of predicates joined by AND.
	Conditions []Condition
)

func (c Condition) validate() error {
	if err := validateColumn(c.Column); err != nil {
		return err
	}

	return c.Operator.validateValue(c.Value)
}

// fragment returns the predicate template, holding a single %s verb in
// place of the column, and the values for its "?" placeholders. Values are
// bound as given; pass a time.Time to compare timestamps.
//
// Pattern operators render ILIKE on PostgreSQL and fall back to
// LOWER(column) LIKE LOWER(?) on dialects without ILIKE.
func (c Condition) fragment(dialect string) (string, []any) {
	if symbol, ok := c.Operator.comparison(); ok {
		return "%s " + symbol + " ?", []any{c.Value}
	}

	switch c.Operator {
	case OperatorIN:
		return "%s IN ?", []any{c.Value}
	case OperatorNULL:
		if isNull, ok := c.Value.(bool); ok && !isNull {
			return "%s IS NOT NULL", nil
		}
		return "%s IS NULL", nil
	case OperatorBTW:
		bounds := reflect.ValueOf(c.Value)
		return "%s BETWEEN ? AND ?", []any{bounds.Index(0).Interface(), bounds.Index(1).Interface()}
	}

	if c.Operator.IsPattern() {
		if dialect == postgresDialect {
			return "%s ILIKE ?", []any{c.Operator.pattern(c.Value)}
		}
		return "LOWER(%s) LIKE LOWER(?)", []any{c.Operator.pattern(c.Value)}
	}

	return "", nil
}

// toGORMExpression converts a condition into a clause.Expression for the
// given dialect. The column is passed as a clause.Column so GORM quotes it.
//
// Example:
//
//	Condition{Column: "age", Operator: OperatorGT, Value: 18}
//
// Result (postgres):
//
//	"users"."age" > $1
func (c Condition) toGORMExpression(dialect string) clause.Expression {
	sqlTemplate, vars := c.fragment(dialect)

	return clause.Expr{
		SQL:  fmt.Sprintf(sqlTemplate, "?"),
		Vars: append([]any{columnRef(c.Column)}, vars...),
	}
}

// toSQLClause converts a condition into an SQL condition using the
// PostgreSQL templates and "?" placeholders.
//
// Example:
//
//	Condition{Column: "name", Operator: OperatorLikeRight, Value: "jo"}
//
// Result:
//
//	("name ILIKE ?", ["jo%"])
func (c Condition) toSQLClause() (string, []driver.Value) {
	sqlTemplate, vars := c.fragment(postgresDialect)

	values := make([]driver.Value, 0, len(vars))
	for _, v := range vars {
		values = append(values, v)
	}

	return fmt.Sprintf(sqlTemplate, c.Column), values
}

// toGORMExpressions converts every condition into a clause.Expression.
// The result is meant to be wrapped in clause.Where, which joins the
// expressions with AND.
func (c Conditions) toGORMExpressions(dialect string) []clause.Expression {
	expressions := make([]clause.Expression, 0, len(c))
	for _, condition := range c {
		expressions = append(expressions, condition.toGORMExpression(dialect))
	}

	return expressions
}

// toSQLClause joins the conditions with AND. Returns "TRUE" for an empty
// list.
//
// Example:
//
//	Conditions{
//		{Column: "age", Operator: OperatorGTE, Value: 18},
//		{Column: "name", Operator: OperatorLIKE, Value: "an"},
//	}
//
// Result:
//
//	("age >= ? AND name ILIKE ?", [18, "%an%"])
func (c Conditions) toSQLClause() (string, []driver.Value) {
	if len(c) == 0 {
		return "TRUE", nil
	}

	andClauses := make([]string, 0, len(c))
	values := make([]driver.Value, 0, len(c))
	for _, condition := range c {
		andClause, andValues := condition.toSQLClause()
		andClauses = append(andClauses, andClause)
		values = append(values, andValues...)
	}

	return strings.Join(andClauses, " AND "), values
}
