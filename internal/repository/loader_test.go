package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adviserSelect = "SELECT e.id AS e_id, e.registration_number AS e_registration_number, e.company AS e_company, " +
	"e.department AS e_department, e.user_id AS e_user_id, e.bank_id AS e_bank_id, " +
	"e_user.id AS user_id, e_user.login AS user_login, e_user.first_name AS user_first_name, " +
	"e_user.last_name AS user_last_name, e_user.email AS user_email, e_user.activated AS user_activated, " +
	"bank.id AS bank_id, bank.name AS bank_name, bank.address AS bank_address " +
	"FROM adviser e " +
	"LEFT OUTER JOIN jhi_user e_user ON e.user_id = e_user.id " +
	"LEFT OUTER JOIN bank bank ON e.bank_id = bank.id"

var adviserColumns = []string{
	"e_id", "e_registration_number", "e_company", "e_department", "e_user_id", "e_bank_id",
	"user_id", "user_login", "user_first_name", "user_last_name", "user_email", "user_activated",
	"bank_id", "bank_name", "bank_address",
}

func newMockAdvisers(t *testing.T) (*AdviserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewAdviserRepository(executor.NewSQL(db, query.SQLite), zerolog.Nop())
	require.NoError(t, err)
	return repo, mock
}

func TestFindByIDPopulatesOnlyPresentAssociations(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " WHERE e.id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(adviserColumns).AddRow(
			int64(1), "REG-1", "ACME", "Retail", nil, int64(3),
			nil, nil, nil, nil, nil, nil,
			int64(3), "BNP", "Dakar",
		))

	a, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, int64(1), *a.ID)
	assert.Equal(t, "REG-1", *a.RegistrationNumber)
	assert.Nil(t, a.UserID)
	assert.Nil(t, a.User())
	require.NotNil(t, a.Bank())
	assert.Equal(t, "BNP", *a.Bank().Name)
	assert.Equal(t, int64(3), *a.BankID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDReturnsNilWhenAbsent(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " WHERE e.id = ?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(adviserColumns))

	a, err := repo.FindByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestFindAllPagesWithDefaultOrder(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " ORDER BY e.id ASC LIMIT 20 OFFSET 20").
		WillReturnRows(sqlmock.NewRows(adviserColumns))

	out, err := repo.FindAll(context.Background(), &query.Page{Index: 1, Size: 20})

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByBankFiltersOnRootAlias(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " WHERE e.bank_id = ? ORDER BY e.department DESC LIMIT 5 OFFSET 0").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(adviserColumns))

	_, err := repo.FindByBank(context.Background(), 3, &query.Page{Size: 5, Sort: []query.Order{{Column: "department", Desc: true}}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllWhereUserIsNull(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " WHERE e.user_id IS NULL").
		WillReturnRows(sqlmock.NewRows(adviserColumns))

	_, err := repo.FindAllWhereUserIsNull(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnknownColumnsAreRejectedBeforeQuerying(t *testing.T) {
	repo, mock := newMockAdvisers(t)

	_, err := repo.FindAllBy(context.Background(), nil, query.Eq("name", "x"))
	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))

	_, err = repo.FindAll(context.Background(), &query.Page{Size: 1, Sort: []query.Order{{Column: "bank_name"}}})
	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnTypeErrorIsSurfaced(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery(adviserSelect + " WHERE e.id = ?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(adviserColumns).AddRow(
			"not-a-number", nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil, nil,
			nil, nil, nil,
		))

	_, err := repo.FindByID(context.Background(), 1)

	var typeErr *errs.ColumnTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "e_id", typeErr.Column)
}

func TestCount(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	mock.ExpectQuery("SELECT COUNT(*) AS total FROM adviser e WHERE e.bank_id IS NOT NULL").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(4)))

	n, err := repo.Count(context.Background(), query.NotNull("bank_id"))

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestCollidingAliasesFailAtConstruction(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Prefixing the user role "e_user" makes its id alias collide with the root's e_user_id.
	_, err = NewLoader(executor.NewSQL(db, query.SQLite), AdviserSchema, zerolog.Nop(),
		Join("e_user", "u", "user_id", UserSchema, (*model.Adviser).SetUser))

	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))
	assert.True(t, strings.Contains(err.Error(), "e_user_id"))
}

func TestJoinOnUnknownForeignKeyFails(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewLoader(executor.NewSQL(db, query.SQLite), BankSchema, zerolog.Nop(),
		Join("user", "e_user", "user_id", UserSchema, func(*model.Bank, *model.User) {}))

	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))
}

func TestEachStopsOnCallbackError(t *testing.T) {
	repo, mock := newMockAdvisers(t)
	rows := sqlmock.NewRows(adviserColumns)
	for i := int64(1); i <= 3; i++ {
		rows.AddRow(i, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	}
	mock.ExpectQuery(adviserSelect).WillReturnRows(rows)

	stop := errors.New("stop")
	seen := 0
	err := repo.Each(context.Background(), nil, nil, func(*model.Adviser) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

func TestDemuxUsesPlanMetadata(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	l, err := NewLoader(executor.NewSQL(db, query.SQLite), ManagerSchema, zerolog.Nop(),
		Join("company", "company", "company_id", CompanySchema, (*model.Manager).SetCompany))
	require.NoError(t, err)

	m, err := l.demux(codec.Row{
		"e_id": int64(4), "e_registration_number": "AAAAAAAAAA", "e_department": nil,
		"e_user_id": nil, "e_company_id": int64(2),
		"company_id": int64(2), "company_name": "Sonatel", "company_ninea": nil, "company_rc": nil, "company_address": nil,
	})

	require.NoError(t, err)
	require.NotNil(t, m.Company())
	assert.Equal(t, "Sonatel", *m.Company().Name)
	assert.Equal(t, int64(2), *m.CompanyID)
}
