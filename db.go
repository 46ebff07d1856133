package gbamap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CatalogDB records scanned layouts and the checksums of their backing
// assets, so repeated scans can spot data that changed between runs.
type CatalogDB struct {
	db *sql.DB
}

// NewCatalogDB opens (creating if necessary) the catalog database.
func NewCatalogDB(file string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS layout (id INTEGER PRIMARY KEY NOT NULL, layout_id TEXT NOT NULL UNIQUE, name TEXT, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (layout_id INTEGER NOT NULL, path TEXT NOT NULL, crc TEXT NOT NULL, UNIQUE(layout_id, path), FOREIGN KEY(layout_id) REFERENCES layout(id))"); err != nil {
		return nil, err
	}

	return &CatalogDB{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *CatalogDB) Close() error {
	return c.db.Close()
}

// AddLayout stores a layout's identity and dimensions, returning its
// row ID. An already catalogued layout keeps its existing row.
func (c *CatalogDB) AddLayout(l Layout) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM layout WHERE layout_id = ?", l.ID).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO layout (layout_id, name, width, height) VALUES (?, ?, ?, ?)", l.ID, l.Name, l.Width, l.Height)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddAsset stores or replaces the checksum of one asset file belonging
// to a layout.
func (c *CatalogDB) AddAsset(layout int64, path, crc string) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO asset (layout_id, path, crc) VALUES (?, ?, ?)", layout, path, crc); err != nil {
		return err
	}
	return nil
}

// CatalogEntry is everything recorded about one scanned layout.
type CatalogEntry struct {
	LayoutID string
	Name     string
	Width    int
	Height   int
	Assets   map[string]string
}

// FindLayout returns the catalogued entry for a layout ID, or nil when
// it has not been scanned.
func (c *CatalogDB) FindLayout(layoutID string) (*CatalogEntry, error) {
	e := &CatalogEntry{
		LayoutID: layoutID,
		Assets:   make(map[string]string),
	}

	var id int64
	switch err := c.db.QueryRow("SELECT id, name, width, height FROM layout WHERE layout_id = ?", layoutID).Scan(&id, &e.Name, &e.Width, &e.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
	default:
		return nil, err
	}

	rows, err := c.db.Query("SELECT path, crc FROM asset WHERE layout_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var path, crc string
		if err := rows.Scan(&path, &crc); err != nil {
			return nil, err
		}
		e.Assets[path] = crc
	}

	return e, rows.Err()
}
