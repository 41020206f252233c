package fixings

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/rustyeddy/valuation/pkg/logger"
)

// Store keeps historical fixings in sqlite. It holds observed market
// values only; bump descriptors are never persisted.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) a fixing database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Append records one fixing for an identifier.
func (s *Store) Append(id string, f Fixing) error {
	_, err := s.db.Exec(`
		INSERT INTO fixings (instrument_id, date, value)
		VALUES (?, ?, ?)`,
		id, f.Date, f.Value,
	)
	return err
}

// SaveTable persists every fixing in a table, e.g. the fixings a time bump
// just materialized. Conflicting rows fail the whole write.
func (s *Store) SaveTable(t *Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, id := range t.IDs() {
		for _, f := range t.Series(id) {
			if _, err := tx.Exec(`
				INSERT INTO fixings (instrument_id, date, value)
				VALUES (?, ?, ?)`,
				id, f.Date, f.Value,
			); err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.L().Debug("saved fixing table",
		zap.Int("fixings", t.Len()),
		zap.Time("spot_date", t.SpotDate()),
	)
	return nil
}

// SeriesRange returns the fixings for an identifier with from <= date < to,
// in date order.
func (s *Store) SeriesRange(id string, from, to time.Time) ([]Fixing, error) {
	rows, err := s.db.Query(`
		SELECT date, value FROM fixings
		WHERE instrument_id = ? AND date >= ? AND date < ?
		ORDER BY date`,
		id, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fixing
	for rows.Next() {
		var f Fixing
		if err := rows.Scan(&f.Date, &f.Value); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// KnownTable rebuilds a Table of every stored fixing before spotDate for
// the given identifiers, for hydrating instruments at construction time.
func (s *Store) KnownTable(spotDate time.Time, ids []string) (*Table, error) {
	m := make(map[string][]Fixing)
	for _, id := range ids {
		fxs, err := s.SeriesRange(id, time.Time{}, spotDate)
		if err != nil {
			return nil, err
		}
		if len(fxs) > 0 {
			m[id] = fxs
		}
	}
	return FromMap(spotDate, m)
}

func (s *Store) Close() error {
	return s.db.Close()
}
