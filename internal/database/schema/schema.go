package schema

import "embed"

// Migrations holds the goose SQL migrations, applied in file name order
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Dir is the directory inside Migrations that holds the files
const Dir = "migrations"
