package sqlerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// Wrap annotates a failed database call with op. A pgconn.PgError is
// converted into an *Error first; the driver error stays reachable through
// errors.As. Wrap returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return fmt.Errorf("%s: %w", op, ConvertPgError(pgerr))
	}

	return fmt.Errorf("%s: %w", op, err)
}
