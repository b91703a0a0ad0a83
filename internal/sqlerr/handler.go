package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrCode reports the mapped Code for a given error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return ConvertSQLiteError(liteErr).Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError into our normalised Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// sqliteConstraintTarget extracts "table.column" from messages such as
// "UNIQUE constraint failed: bank.id".
var sqliteConstraintTarget = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)

// ConvertSQLiteError converts a modernc SQLite error into our normalised Error.
// SQLite reports no table or column metadata, so both are recovered from the message.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	code := Other
	switch src.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		code = UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		code = ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		code = NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		code = CheckViolation
	case sqlite3.SQLITE_CONSTRAINT:
		// Primary result code only; the message still names the constraint kind.
		msg := src.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			code = UniqueViolation
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			code = ForeignKeyViolation
		case strings.Contains(msg, "NOT NULL constraint failed"):
			code = NotNullViolation
		case strings.Contains(msg, "CHECK constraint failed"):
			code = CheckViolation
		}
	}

	out := &Error{
		Code:         code,
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}
	if m := sqliteConstraintTarget.FindStringSubmatch(src.Error()); len(m) == 3 {
		out.TableName = m[1]
		out.ColumnName = m[2]
		if code == UniqueViolation {
			out.ConstraintName = fmt.Sprintf("%s_%s_key", m[1], m[2])
		}
	}
	return out
}

// generateErrorCode creates application error codes shaped <DOMAIN>_<ACTION>,
// e.g. adviser + UniqueViolation => ADVISER_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(strings.TrimPrefix(tableName, "jhi_"))
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces a message that can be shown to end users.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name: a "<x>_id" column wins, then the
// table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := strings.TrimPrefix(tableName, "jhi_")
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeySuffix = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column from a unique constraint
// name. Supported conventions: "unique_<table>_<column>" and
// "<table>_<column>_key" / "<table>_<column>_ukey".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeySuffix.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error raised while executing op
// ("insert", "update", "delete") on entity into an application-level error.
//
// Output:
//   - nil stays nil
//   - errors already in the errs taxonomy are returned unchanged
//   - pgconn.PgError and sqlite.Error become *errs.PersistenceError with a mapped code
//   - ErrNoRows becomes *errs.NotFoundError
//   - anything else becomes a generic *errs.PersistenceError wrapping err
func HandleError(entity, op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		persistErr *errs.PersistenceError
		notFound   *errs.NotFoundError
		malformed  *errs.MalformedQueryError
		columnErr  *errs.ColumnTypeError
	)
	if errors.As(err, &persistErr) || errors.As(err, &notFound) || errors.As(err, &malformed) ||
		errors.As(err, &columnErr) {
		return err
	}

	var sqlErr *Error
	var pgerr *pgconn.PgError
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pgerr):
		sqlErr = ConvertPgError(pgerr)
	case errors.As(err, &liteErr):
		sqlErr = ConvertSQLiteError(liteErr)
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return &errs.NotFoundError{
			Code:   errs.MakeUpperCaseWithUnderscores(entity + " not found"),
			Entity: entity,
		}
	default:
		return &errs.PersistenceError{
			Code:    generateErrorCode(entity, Other),
			Message: formatUserFriendlyMessage(&Error{Code: Other}),
			Entity:  entity,
			Op:      op,
			Err:     err,
		}
	}

	table := sqlErr.TableName
	if table == "" {
		table = entity
	}
	out := &errs.PersistenceError{
		Code:    generateErrorCode(table, sqlErr.Code),
		Message: formatUserFriendlyMessage(sqlErr),
		Entity:  entity,
		Op:      op,
		Err:     err,
	}

	switch sqlErr.Code {
	case UniqueViolation:
		if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
			out.Message = strings.ReplaceAll(out.Message, "identifier", humanizeText(columnName))
		}
	case NotNullViolation:
		out.Errors = []errs.FieldError{{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: "is required",
		}}
	}

	return out
}
