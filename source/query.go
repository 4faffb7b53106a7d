package source

import "fmt"

// ReadQuery builds the per-run read query for the given driver. The status
// value is bound as the single query parameter; the ORDER BY is cosmetic to
// the source and is not relied on downstream. The table name is interpolated
// and must come from trusted configuration, not user input.
func ReadQuery(driver, table string, limit int) string {
	switch driver {
	case "postgres":
		return fmt.Sprintf("SELECT ref, sender, message, status FROM %s WHERE status = $1 ORDER BY ref LIMIT %d", table, limit)
	default:
		// mysql, sqlite3
		return fmt.Sprintf("SELECT ref, sender, message, status FROM %s WHERE status = ? ORDER BY ref LIMIT %d", table, limit)
	}
}
