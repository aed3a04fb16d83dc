// Package db embeds the SQL migration files applied at startup.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
