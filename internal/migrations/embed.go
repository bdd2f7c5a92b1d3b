package migrations

import "embed"

// One sub directory per database type: postgres, mysql, sqllite3.
//
//go:embed postgres mysql sqllite3
var FS embed.FS
