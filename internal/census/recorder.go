package census

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS census (
	tick           INTEGER PRIMARY KEY,
	plants         INTEGER NOT NULL,
	roots          INTEGER NOT NULL,
	stems          INTEGER NOT NULL,
	leaves         INTEGER NOT NULL,
	flowers        INTEGER NOT NULL,
	seeds          INTEGER NOT NULL,
	insects        INTEGER NOT NULL,
	worms          INTEGER NOT NULL,
	dead           INTEGER NOT NULL,
	water_cells    INTEGER NOT NULL,
	total_water    INTEGER NOT NULL,
	total_energy   INTEGER NOT NULL,
	total_nutrient INTEGER NOT NULL
);`

// Recorder appends census samples to a sqlite database, one row per sampled
// tick. Writes are synchronous; the sampling interval keeps the volume low.
type Recorder struct {
	db *sql.DB
}

// OpenRecorder opens (creating if needed) the census database at path.
func OpenRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init census schema: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Append inserts one sample. Re-recording the same tick replaces the row.
func (r *Recorder) Append(s Sample) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO census (
			tick, plants, roots, stems, leaves, flowers, seeds,
			insects, worms, dead, water_cells,
			total_water, total_energy, total_nutrient
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Tick, s.Plants, s.Roots, s.Stems, s.Leaves, s.Flowers, s.Seeds,
		s.Insects, s.Worms, s.Dead, s.Water,
		s.TotalWater, s.TotalEnergy, s.TotalNutrient,
	)
	return err
}

// Count reports how many samples the database holds.
func (r *Recorder) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM census`).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}
