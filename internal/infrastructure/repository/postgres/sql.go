package postgres

import "database/sql"

// The read repositories report missing rows as (zero, false, nil).
func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}
