// errors.go - Maps validation and driver failures onto the store's error taxonomy

package database // Declares the package name

import ( // Import required packages
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10" // Struct tag validation errors
	"github.com/jackc/pgx/v5/pgconn"         // Postgres error codes
	"github.com/mattn/go-sqlite3"            // SQLite extended error codes
	"gorm.io/gorm"                           // ErrRecordNotFound
)

// Error taxonomy surfaced by Store. Match with errors.Is.
var (
	ErrUniquenessViolation  = errors.New("uniqueness violation")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrForeignKeyViolation  = errors.New("foreign key violation")
	ErrInvalidField         = errors.New("invalid field")
	ErrNotFound             = errors.New("record not found")
)

// ValidationError is returned for every rejected write.
type ValidationError struct {
	Entity string // "user", "recipe", "cart" or "cart_item"
	Field  string // empty when the store cannot tell which column failed
	Err    error  // one of the sentinels above
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Entity, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// fromValidation converts struct-tag failures into a ValidationError for the first field.
func fromValidation(entity string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate %s: %w", entity, err)
	}
	fe := verrs[0] // Report the first failing field only
	sentinel := ErrInvalidField
	if fe.Tag() == "required" {
		sentinel = ErrMissingRequiredField
	}
	return &ValidationError{Entity: entity, Field: fe.Field(), Err: sentinel}
}

// translate maps driver errors onto the taxonomy. Unknown errors are wrapped as-is.
// Driver codes are matched directly because they carry the failing column.
func translate(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}

	var liteErr sqlite3.Error // mattn/go-sqlite3 returns it by value
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &ValidationError{Entity: entity, Field: sqliteColumn(liteErr.Error()), Err: ErrUniquenessViolation}
		case sqlite3.ErrConstraintForeignKey:
			return &ValidationError{Entity: entity, Err: ErrForeignKeyViolation}
		case sqlite3.ErrConstraintNotNull:
			return &ValidationError{Entity: entity, Field: sqliteColumn(liteErr.Error()), Err: ErrMissingRequiredField}
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ValidationError{Entity: entity, Field: pgColumn(entity+"s", pgErr.ConstraintName), Err: ErrUniquenessViolation}
		case "23503":
			return &ValidationError{Entity: entity, Err: ErrForeignKeyViolation}
		case "23502":
			return &ValidationError{Entity: entity, Field: pgErr.ColumnName, Err: ErrMissingRequiredField}
		}
	}

	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// sqliteColumn extracts "email" from "UNIQUE constraint failed: users.email".
func sqliteColumn(msg string) string {
	i := strings.LastIndex(msg, ": ")
	if i < 0 {
		return ""
	}
	cols := strings.Split(msg[i+2:], ", ")
	if _, col, ok := strings.Cut(cols[0], "."); ok {
		return col
	}
	return ""
}

// pgColumn extracts "email" from gorm's index name "idx_users_email".
func pgColumn(table, constraint string) string {
	col, ok := strings.CutPrefix(constraint, "idx_"+table+"_")
	if !ok {
		return ""
	}
	return col
}
