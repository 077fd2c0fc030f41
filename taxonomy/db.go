// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// DB is a taxonomy stored in a SQLite database
// with the layout of the NCBI taxonomy dump.
//
// The database must contain the tables:
//
//	nodes(tax_id INTEGER, parent_tax_id INTEGER, rank TEXT)
//	names(tax_id INTEGER, name_txt TEXT, name_class TEXT)
//
// Only names with the class "scientific name" are used.
type DB struct {
	name string
	db   *sql.DB
	stmt *sql.Stmt
}

const taxonQuery = `
	SELECT nodes.parent_tax_id, nodes.rank, names.name_txt
	FROM nodes
	JOIN names ON names.tax_id = nodes.tax_id
	WHERE nodes.tax_id = ? AND names.name_class = 'scientific name'
	LIMIT 1`

// OpenDB opens a taxonomy database.
func OpenDB(name string) (*DB, error) {
	if _, err := os.Stat(name); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", name)
	if err != nil {
		return nil, fmt.Errorf("on database %q: %v", name, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("on database %q: %v", name, err)
	}

	stmt, err := db.Prepare(taxonQuery)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("on database %q: %v", name, err)
	}
	return &DB{
		name: name,
		db:   db,
		stmt: stmt,
	}, nil
}

// Taxon returns the taxon with the given ID.
func (d *DB) Taxon(id int64) (Taxon, error) {
	t := Taxon{ID: id}
	var rank string
	err := d.stmt.QueryRow(id).Scan(&t.Parent, &rank, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Taxon{}, fmt.Errorf("taxon %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Taxon{}, fmt.Errorf("on database %q: taxon %d: %v", d.name, id, err)
	}
	t.Rank = Rank(rank)
	return t, nil
}

// Close closes the database.
func (d *DB) Close() error {
	d.stmt.Close()
	return d.db.Close()
}
