// Package sqlerr specifically handles database driver errors.
//
// It parses the SQLSTATE and metadata of PostgreSQL errors into a
// structured Error, so storage failures carry readable context in logs.
// These errors are never shown to clients: they stay unclassified and end
// up as a generic 500.
package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code is a coarse category for a SQLSTATE.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
	InvalidJSON         Code = "invalid_json"
	UndefinedTable      Code = "undefined_table"
	ConnectionFailure   Code = "connection_failure"
)

// sqlstates lists the codes this service can meet on the products table.
var sqlstates = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
	"23502": NotNullViolation,
	"23514": CheckViolation,
	"22P02": InvalidJSON,
	"22032": InvalidJSON,
	"42P01": UndefinedTable,
	"08000": ConnectionFailure,
	"08003": ConnectionFailure,
	"08006": ConnectionFailure,
}

// MapCode maps a SQLSTATE to its Code.
func MapCode(sqlstate string) Code {
	if code, ok := sqlstates[sqlstate]; ok {
		return code
	}
	return Other
}

// Error is a PostgreSQL error reduced to the fields worth logging.
type Error struct {
	Code           Code
	DatabaseCode   string
	Severity       string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	msg := string(e.Code) + " (" + e.DatabaseCode + ")"
	if e.TableName != "" {
		msg += " on table " + e.TableName
	}
	if e.ConstraintName != "" {
		msg += " constraint " + e.ConstraintName
	}
	return msg + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Severity:       src.Severity,
		Message:        src.Message,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
