// fixings/schema.go
package fixings

const Schema = `
CREATE TABLE IF NOT EXISTS fixings (
	instrument_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (instrument_id, date)
);

CREATE INDEX IF NOT EXISTS idx_fixings_date ON fixings(date);
`
