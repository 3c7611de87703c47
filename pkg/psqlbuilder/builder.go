// Package psqlbuilder wraps squirrel with the PostgreSQL placeholder format,
// so repositories never have to repeat PlaceholderFormat(squirrel.Dollar).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with $N placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert creates an INSERT builder with $N placeholders
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update creates an UPDATE builder with $N placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete creates a DELETE builder with $N placeholders
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
