package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWithoutIDInserts(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery("INSERT INTO adviser (registration_number, company, department, user_id, bank_id) VALUES (?, ?, ?, ?, ?) RETURNING id").
		WithArgs("AAAAAAAAAA", nil, "Retail", nil, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	in := &model.Adviser{RegistrationNumber: model.Ptr("AAAAAAAAAA"), Department: model.Ptr("Retail"), BankID: model.Ptr(int64(3))}
	out, err := repo.Save(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, out.ID)
	assert.Equal(t, int64(7), *out.ID)
	assert.Nil(t, in.ID, "input must not be mutated on insert")
	assert.Equal(t, "AAAAAAAAAA", *out.RegistrationNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveWithIDUpdates(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectExec("UPDATE adviser SET registration_number = ?, company = ?, department = ?, user_id = ?, bank_id = ? WHERE id = ?").
		WithArgs("BBBBBBBBBB", nil, nil, nil, nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	in := &model.Adviser{ID: model.Ptr(int64(7)), RegistrationNumber: model.Ptr("BBBBBBBBBB")}
	out, err := repo.Save(context.Background(), in)

	require.NoError(t, err)
	assert.Same(t, in, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveWithUnknownIDIsNotFound(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectExec("UPDATE adviser SET registration_number = ?, company = ?, department = ?, user_id = ?, bank_id = ? WHERE id = ?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Save(context.Background(), &model.Adviser{ID: model.Ptr(int64(404))})

	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Adviser", notFound.Entity)
	assert.Equal(t, int64(404), notFound.ID)
}

func TestInsertWithExplicitIDWritesIt(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery("INSERT INTO adviser (id, registration_number, company, department, user_id, bank_id) VALUES (?, ?, ?, ?, ?, ?) RETURNING id").
		WithArgs(int64(12), nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	out, err := repo.Insert(context.Background(), &model.Adviser{ID: model.Ptr(int64(12))})

	require.NoError(t, err)
	assert.Equal(t, int64(12), *out.ID)
}

func TestInsertDriverFailureIsPersistenceError(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery("INSERT INTO adviser (registration_number, company, department, user_id, bank_id) VALUES (?, ?, ?, ?, ?) RETURNING id").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Save(context.Background(), &model.Adviser{})

	var persistErr *errs.PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "insert", persistErr.Op)
	assert.Equal(t, "ADVISER_ERROR", persistErr.Code)
}

func TestDelete(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectExec("DELETE FROM adviser WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertUndecodableIDIsColumnTypeError(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery("INSERT INTO adviser (registration_number, company, department, user_id, bank_id) VALUES (?, ?, ?, ?, ?) RETURNING id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("not-an-id"))

	_, err := repo.Save(context.Background(), &model.Adviser{})

	var typeErr *errs.ColumnTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "id", typeErr.Column)
	assert.False(t, errors.Is(err, &errs.PersistenceError{}))
}
