// Package migrations contém o schema SQL aplicado pelo goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
