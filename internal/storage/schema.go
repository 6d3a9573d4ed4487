// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for reports, readings, appointments, chat.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY,
		filename TEXT NOT NULL,
		upload_date DATETIME NOT NULL,
		extracted_text TEXT NOT NULL,
		analysis TEXT NOT NULL,
		metadata TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS readings (
		kind TEXT NOT NULL,
		date TEXT NOT NULL,
		field_values TEXT NOT NULL,
		PRIMARY KEY (kind, date)
	);

	CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		appointment_id INTEGER NOT NULL,
		facility_name TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		service TEXT NOT NULL,
		status TEXT NOT NULL,
		patient_name TEXT,
		phone TEXT,
		reason TEXT,
		doctor TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL,
		text TEXT NOT NULL,
		sent_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_readings_kind ON readings(kind, date);
	CREATE INDEX IF NOT EXISTS idx_appointments_created ON appointments(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_chat_sent ON chat_messages(sent_at);
	`

	_, err := d.db.Exec(schema)
	return err
}
