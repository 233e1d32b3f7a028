// Package db provides the embedded SQL migrations.
package db

import "embed"

// Migrations holds the versioned up/down migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
