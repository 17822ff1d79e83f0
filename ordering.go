package pagequery

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSortColumn is the column every Builder is sorted by until the sort
// is substituted.
const DefaultSortColumn = "created_at"

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

// Valid reports whether o is DirectionASC or DirectionDESC.
func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

type (
	// Orderings is an ordered list of sort columns, the first one wins.
	Orderings []OrderBy

	// OrderBy sorts by a single column.
	OrderBy struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to column names.
	// Key is an external alias, value is an internal column name, optionally
	// prefixed with a joined relation ("Company.name").
	ColumnMapping = map[ColumnAlias]string
)

func defaultOrderings() Orderings {
	return Orderings{{Column: DefaultSortColumn, Direction: DirectionDESC}}
}

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	if err := validateColumn(o.Column); err != nil {
		return fmt.Errorf("invalid ordering column: %w", err)
	}

	return nil
}

// upsert sets the direction of an already present column in place, or
// appends the ordering when the column is not sorted yet.
func (o Orderings) upsert(orderBy OrderBy) Orderings {
	idx := slices.IndexFunc(o, func(processed OrderBy) bool {
		return processed.Column == orderBy.Column
	})
	if idx != -1 {
		o[idx].Direction = orderBy.Direction
		return o
	}

	return append(o, orderBy)
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>".
//
// Example: for Orderings: [{"a", "ASC"}, {"b", "DESC"}] returns ["a ASC", "b DESC"].
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>".
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query. Columns are quoted and
// qualified with the model table (see columnRef).
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	columns := lo.Map(o, func(ordering OrderBy, _ int) clause.OrderByColumn {
		return clause.OrderByColumn{
			Column: columnRef(ordering.Column),
			Desc:   ordering.Direction == DirectionDESC,
		}
	})

	return db.Clauses(clause.OrderBy{Columns: columns})
}

// ParseSort builds Orderings from a list of strings in the format
// "column asc|desc". Column aliases are resolved via ColumnMapping.
// Returns an error if an alias is not found in the mapping.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make([]OrderBy, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		cutStringOrdering := strings.Fields(stringOrdering)
		if len(cutStringOrdering) != 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", stringOrdering)
		}

		columnAlias := cutStringOrdering[0]
		direction := Direction(strings.ToUpper(cutStringOrdering[1]))
		columnName := columnMapping[columnAlias]
		if columnName == "" {
			return nil, fmt.Errorf("invalid column alias. closest: '%s'", closestAlias(columnAlias, aliases))
		}

		orderBy := OrderBy{
			Column:    columnName,
			Direction: direction,
		}
		if err := orderBy.validate(); err != nil {
			return nil, err
		}

		ret = append(ret, orderBy)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	// Keys come from a map, sort them so ties resolve deterministically.
	slices.Sort(dataSet)
	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
