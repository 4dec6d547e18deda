package database

// migrationsSQL holds all schema migrations keyed by version.
// Versions must be consecutive starting at 1; Migrate applies them in
// order inside a single transaction.
var migrationsSQL = map[int]string{
	1: `
		CREATE TABLE IF NOT EXISTS days (
			day_offset INTEGER PRIMARY KEY,
			year       INTEGER NOT NULL,
			month      INTEGER NOT NULL,
			day        INTEGER NOT NULL,
			weekday    INTEGER NOT NULL,
			iso        TEXT    NOT NULL,
			UNIQUE (year, month, day)
		);

		CREATE INDEX IF NOT EXISTS idx_days_iso ON days (iso);
	`,
}
