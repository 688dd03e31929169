package accounts

import "github.com/dmitrijs2005/croissant/internal/server/config"

// Schema names the table and columns holding accounts.
type Schema struct {
	Table       string
	EmailColumn string
	HashColumn  string
}

var (
	// LiveSchema is the production account table.
	LiveSchema = Schema{Table: "LiveClients", EmailColumn: "master_email", HashColumn: "access_code"}
	// DevSchema is the development account table.
	DevSchema = Schema{Table: "dev_login_credentials", EmailColumn: "email", HashColumn: "access_code"}
)

// SchemaFor returns the preset for a config.AccountSchema* name, falling back
// to LiveSchema.
func SchemaFor(name string) Schema {
	if name == config.AccountSchemaDev {
		return DevSchema
	}
	return LiveSchema
}
