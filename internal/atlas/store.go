package atlas

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexview/internal/hexgrid"
)

// Store is a SQLite-backed tileset database. The asset pipeline writes
// tilesets into it; the viewer reads one atlas out of it at load time.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates a tileset database at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open tileset db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tilesets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS tileset_regions (
		tileset_id INTEGER NOT NULL,
		tile_type INTEGER NOT NULL,
		u0 REAL NOT NULL,
		v0 REAL NOT NULL,
		u1 REAL NOT NULL,
		v1 REAL NOT NULL,
		PRIMARY KEY (tileset_id, tile_type)
	);

	CREATE INDEX IF NOT EXISTS idx_regions_tileset ON tileset_regions(tileset_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveAtlas writes a named tileset (full replace).
func (s *Store) SaveAtlas(name string, a *Atlas) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO tilesets (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return err
	}

	var id int64
	if err := tx.Get(&id, `SELECT id FROM tilesets WHERE name = ?`, name); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM tileset_regions WHERE tileset_id = ?`, id); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO tileset_regions
		(tileset_id, tile_type, u0, v0, u1, v1)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for t, r := range a.regions {
		if _, err := stmt.Exec(id, int(t), r.U0, r.V0, r.U1, r.V1); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type regionRow struct {
	TileType int     `db:"tile_type"`
	U0       float64 `db:"u0"`
	V0       float64 `db:"v0"`
	U1       float64 `db:"u1"`
	V1       float64 `db:"v1"`
}

// LoadAtlas reads a named tileset. An unknown name is an error.
func (s *Store) LoadAtlas(name string) (*Atlas, error) {
	var id int64
	if err := s.conn.Get(&id, `SELECT id FROM tilesets WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("tileset %q: %w", name, err)
	}

	var rows []regionRow
	if err := s.conn.Select(&rows, `SELECT tile_type, u0, v0, u1, v1
		FROM tileset_regions WHERE tileset_id = ? ORDER BY tile_type`, id); err != nil {
		return nil, fmt.Errorf("tileset %q regions: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tileset %q has no regions", name)
	}

	regions := make(map[hexgrid.TileType]Region, len(rows))
	for _, row := range rows {
		regions[hexgrid.TileType(row.TileType)] = Region{
			U0: row.U0, V0: row.V0, U1: row.U1, V1: row.V1,
		}
	}
	return New(regions), nil
}
