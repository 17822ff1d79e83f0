package pagequery

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

var _availableColumnNameSymbols = append([]rune("_."), lo.AlphanumericCharset...)

// validateColumn guards against SQL injection by restricting allowed
// characters in column and relation names.
func validateColumn(column string) error {
	if column == "" {
		return fmt.Errorf("empty column name")
	}

	if !lo.Every(_availableColumnNameSymbols, []rune(column)) {
		return fmt.Errorf("column name contains forbidden symbols '%s'", column)
	}

	if strings.HasPrefix(column, ".") || strings.HasSuffix(column, ".") {
		return fmt.Errorf("malformed column name '%s'", column)
	}

	return nil
}

// columnRef converts a column name into a clause.Column GORM will quote for
// the active dialect. A bare name refers to the queried model table, while
// "Relation.column" refers to a joined relation. Nested relations are
// aliased the way GORM names nested joins, with "__" between the parts.
//
// Example:
//
//	"age"                  -> "users"."age"
//	"Company.name"         -> "Company"."name"
//	"Manager.Company.name" -> "Manager__Company"."name"
func columnRef(column string) clause.Column {
	idx := strings.LastIndex(column, ".")
	if idx == -1 {
		return clause.Column{Table: clause.CurrentTable, Name: column}
	}

	return clause.Column{
		Table: strings.ReplaceAll(column[:idx], ".", "__"),
		Name:  column[idx+1:],
	}
}
