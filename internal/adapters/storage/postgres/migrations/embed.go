// Package migrations embebe los .sql que aplica goose al arrancar (y adminctl migrate).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
