package source

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/errdef"
)

// LoadSQLite loads every row of one table as text. The table name is
// validated against sqlite_master before being spliced into the query,
// since table names cannot be bound as parameters.
func LoadSQLite(path, table string) (*dataset.Dataset, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "open sqlite %s", path)
	}
	defer db.Close()

	if err := validateTable(db, table); err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %q`, table))
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "query table %s", table)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "read columns of %s", table)
	}

	var recs []*dataset.Record
	scan := make([]sql.NullString, len(headers))
	dest := make([]any, len(headers))
	for i := range scan {
		dest[i] = &scan[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errdef.Wrap(errdef.CodeSource, err, "scan row of %s", table)
		}
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if scan[i].Valid {
				fields[h] = scan[i].String
			}
		}
		recs = append(recs, dataset.NewRecord(fields))
	}
	if err := rows.Err(); err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "iterate table %s", table)
	}

	return dataset.New(buildColumns(headers, recs), recs), nil
}

// Tables lists the user tables of a database file.
func Tables(path string) ([]string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "open sqlite %s", path)
	}
	defer db.Close()
	return listTables(db)
}

func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeSource, err, "list tables")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errdef.Wrap(errdef.CodeSource, err, "scan table name")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func validateTable(db *sql.DB, table string) error {
	var name string
	err := db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return errdef.New(errdef.CodeSource, "table %q not found", table)
	}
	if err != nil {
		return errdef.Wrap(errdef.CodeSource, err, "validate table %s", table)
	}
	return nil
}
