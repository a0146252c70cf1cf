package db

import (
	"database/sql"
	"errors"
)

// ErrNoRows is returned when a lookup matches nothing.
var ErrNoRows = errors.New("db: no rows found")

func IsNoRows(err error) bool {
	return errors.Is(err, ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
