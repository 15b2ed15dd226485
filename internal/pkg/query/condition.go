package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("style", "FITTED") generates "style = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// inCondition implements set membership via UNNEST.
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition for membership in a string set.
// Example: In("product_id", ids) generates "product_id IN UNNEST(@p0)"
func In(field string, values []string) Condition {
	return &inCondition{
		field:  field,
		values: values,
	}
}

// SQL generates the SQL fragment for set membership.
func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.values,
	}
	return sql, params
}
