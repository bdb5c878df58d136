package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid input")
)

// Коды ограничений PostgreSQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
