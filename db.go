package brickart

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/brickart/palette"
	_ "github.com/mattn/go-sqlite3"
)

// InventoryDB stores the stud inventory of every mosaic that has been built,
// keyed by the SHA-1 of the source image.
type InventoryDB struct {
	db *sql.DB
}

// Record is a mosaic stored in the database.
type Record struct {
	SHA1     string
	Source   string
	GridSize int
}

// NewInventoryDB opens or creates the database in file.
func NewInventoryDB(file string) (*InventoryDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS mosaic (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, source TEXT NOT NULL, grid_size INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS part (mosaic_id INTEGER NOT NULL, tile_x INTEGER NOT NULL, tile_y INTEGER NOT NULL, color TEXT NOT NULL, count INTEGER NOT NULL, UNIQUE(mosaic_id, tile_x, tile_y, color), FOREIGN KEY(mosaic_id) REFERENCES mosaic(id))"); err != nil {
		return nil, err
	}

	return &InventoryDB{
		db: db,
	}, nil
}

func (db *InventoryDB) Close() error {
	return db.db.Close()
}

func (db *InventoryDB) addMosaic(tx *sql.Tx, sha, source string, size int) (int64, error) {
	var id int64
	switch err := tx.QueryRow("SELECT id FROM mosaic WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO mosaic (sha1, source, grid_size) VALUES (?, ?, ?)", sha, source, size)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := tx.Exec("UPDATE mosaic SET source = ?, grid_size = ? WHERE id = ?", source, size, id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// Record replaces the inventory stored for the source image with the given
// SHA-1.
func (db *InventoryDB) Record(sha, source string, size int, parts []Part) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, err := db.addMosaic(tx, sha, source, size)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM part WHERE mosaic_id = ?", id); err != nil {
		return err
	}

	for _, p := range parts {
		if _, err = tx.Exec("INSERT INTO part (mosaic_id, tile_x, tile_y, color, count) VALUES (?, ?, ?, ?, ?)", id, p.TileX, p.TileY, palette.Hex(p.Color), p.Count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Records returns every mosaic in the database, oldest first.
func (db *InventoryDB) Records() ([]Record, error) {
	rows, err := db.db.Query("SELECT sha1, source, grid_size FROM mosaic ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.SHA1, &r.Source, &r.GridSize); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Parts returns the inventory for the source image with the given SHA-1 in
// the order it was recorded. It returns nil if there is no such mosaic.
func (db *InventoryDB) Parts(sha string) ([]Part, error) {
	rows, err := db.db.Query("SELECT p.tile_x, p.tile_y, p.color, p.count FROM part AS p JOIN mosaic AS m ON p.mosaic_id = m.id WHERE m.sha1 = ? ORDER BY p.rowid", sha)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []Part
	for rows.Next() {
		var p Part
		var hex string
		if err := rows.Scan(&p.TileX, &p.TileY, &hex, &p.Count); err != nil {
			return nil, err
		}
		c, err := palette.Parse([]string{hex})
		if err != nil {
			return nil, err
		}
		p.Color = c[0]
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
