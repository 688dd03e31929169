// Package migrations embeds the SQL schema applied by the provisioning command.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
