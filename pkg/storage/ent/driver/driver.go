// Package entdriver implements the domain store interfaces on top of an
// ent client. It is database-agnostic and is embedded by the sqlite and
// postgres drivers.
package entdriver

import (
	"github.com/perusehq/peruse/pkg/storage/ent"
)

// EntDriver provides storage operations using an ent client.
type EntDriver struct {
	Client *ent.Client
}

// Close closes the database connection.
func (ed *EntDriver) Close() error {
	return ed.Client.Close()
}
