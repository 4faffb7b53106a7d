package writer

// Placeholder selects the bind-parameter style for the destination dialect.
type Placeholder string

const (
	// PlaceholderDollar uses numbered placeholders ($1, $2, ...). PostgreSQL.
	PlaceholderDollar Placeholder = "dollar"

	// PlaceholderQuestion uses positional placeholders (?). MySQL, SQLite.
	PlaceholderQuestion Placeholder = "question"
)

// PlaceholderForDriver returns the placeholder style for a database/sql
// driver name.
func PlaceholderForDriver(driver string) Placeholder {
	switch driver {
	case "postgres":
		return PlaceholderDollar
	default:
		return PlaceholderQuestion
	}
}
