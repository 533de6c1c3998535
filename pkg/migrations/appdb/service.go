// Package appdb holds all the migrations for the API database
package appdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the API database
var Migrations = migrate.NewMigrations()
