// Package errs defines the error types returned by the data-access layer.
//
// Every failure the loading layer can produce maps onto one of these
// types, so callers can branch with errors.Is / errors.As instead of
// matching message strings:
//   - ColumnTypeError: a column value could not be coerced to the target type.
//   - NotFoundError: an update or lookup that requires a row found none.
//   - PersistenceError: the database rejected a write (constraint, driver).
//   - MalformedQueryError: a query plan or predicate is structurally invalid.
//   - ValidationError: caller input failed struct-tag validation.
package errs
