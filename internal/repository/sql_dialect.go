package repository

import (
	"fmt"
	"strings"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
)

// placeholder returns the correct bind variable for the given index based on DB type.
// Postgres uses $1, $2... while MySQL and SQLite use ?
func placeholder(i int) string {
	if config.DatabaseType() == config.DATABASE_TYPE_POSTGRES {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

// placeholders returns n comma separated bind variables starting at 1.
func placeholders(n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = placeholder(i + 1)
	}
	return strings.Join(p, ", ")
}

func supportsReturning() bool {
	return config.DatabaseType() == config.DATABASE_TYPE_POSTGRES
}
