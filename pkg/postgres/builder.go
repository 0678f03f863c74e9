package postgres

import "fmt"

// ConnectionBuilder assembles a keyword/value DSN for pgx. The timezone is
// applied per session so bookings resolve against the venue-local clock even
// when the database server runs in UTC.
func ConnectionBuilder(host string, port int, user, password, dbName, sslMode, timezone string) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
	if timezone != "" {
		dsn += fmt.Sprintf(" timezone=%s", timezone)
	}
	return dsn
}
