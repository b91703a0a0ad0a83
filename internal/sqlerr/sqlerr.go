// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database drivers (pgx SQLSTATE
// codes and SQLite extended result codes) and converts them into
// errs.PersistenceError values carrying a stable machine code and a
// user-friendly message.
package sqlerr
