package query

import (
	"errors"
	"math"
	"testing"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adviserTable = Table{Name: "adviser", Alias: "e"}
	userTable    = Table{Name: "jhi_user", Alias: "e_user"}
	bankTable    = Table{Name: "bank", Alias: "bank"}
)

func adviserSelect() Select {
	cols := Project(adviserTable, "e", "id", "registration_number", "company", "department", "user_id", "bank_id")
	cols = append(cols, Project(userTable, "user", "id", "login")...)
	cols = append(cols, Project(bankTable, "bank", "id", "name", "address")...)
	return Select{
		From:    adviserTable,
		Columns: cols,
		Joins: []Join{
			{Table: userTable, FK: "user_id", PK: "id"},
			{Table: bankTable, FK: "bank_id", PK: "id"},
		},
	}
}

func TestProjectKeepsDeclarationOrder(t *testing.T) {
	got := Project(bankTable, "bank", "id", "name", "address")

	require.Len(t, got, 3)
	assert.Equal(t, "bank.id AS bank_id", got[0].render())
	assert.Equal(t, "bank.name AS bank_name", got[1].render())
	assert.Equal(t, "bank.address AS bank_address", got[2].render())
}

func TestSelectWithoutFilterOrPage(t *testing.T) {
	sql, args, err := adviserSelect().Build(Postgres)

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT e.id AS e_id, e.registration_number AS e_registration_number, e.company AS e_company, "+
			"e.department AS e_department, e.user_id AS e_user_id, e.bank_id AS e_bank_id, "+
			"e_user.id AS user_id, e_user.login AS user_login, "+
			"bank.id AS bank_id, bank.name AS bank_name, bank.address AS bank_address "+
			"FROM adviser e "+
			"LEFT OUTER JOIN jhi_user e_user ON e.user_id = e_user.id "+
			"LEFT OUTER JOIN bank bank ON e.bank_id = bank.id",
		sql)
	assert.NotContains(t, sql, "WHERE")
	assert.NotContains(t, sql, "LIMIT")
}

func TestSelectWithFilterAndPage(t *testing.T) {
	s := adviserSelect()
	s.Where = And(Eq("department", "Retail"), IsNull("bank_id"))
	s.Page = &Page{Index: 2, Size: 10, Sort: []Order{{Column: "registration_number", Desc: true}, {Column: "id"}}}

	sql, args, err := s.Build(Postgres)

	require.NoError(t, err)
	assert.Contains(t, sql, " WHERE (e.department = $1 AND e.bank_id IS NULL)"+
		" ORDER BY e.registration_number DESC, e.id ASC LIMIT 10 OFFSET 20")
	assert.Equal(t, []any{"Retail"}, args)
}

func TestSQLitePlaceholders(t *testing.T) {
	sql, args, err := Count{From: adviserTable, Where: Or(Eq("id", int64(1)), In("bank_id", int64(2), int64(3)))}.Build(SQLite)

	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS total FROM adviser e WHERE (e.id = ? OR e.bank_id IN (?, ?))", sql)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, args)
}

func TestSelectRejectsDuplicateAlias(t *testing.T) {
	s := adviserSelect()
	// "e" + "user_id" collides with "e_user" + "id" if the user role were prefixed e_user.
	s.Columns = append(s.Columns, Project(userTable, "e_user", "id")...)

	_, _, err := s.Build(Postgres)

	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))
	assert.ErrorContains(t, err, `duplicate column alias "e_user_id"`)
}

func TestSelectRejectsDuplicateTableAlias(t *testing.T) {
	s := adviserSelect()
	s.Joins = append(s.Joins, Join{Table: Table{Name: "company", Alias: "bank"}, FK: "bank_id", PK: "id"})

	_, _, err := s.Build(Postgres)
	assert.ErrorContains(t, err, `duplicate table alias "bank"`)
}

func TestMalformedPredicates(t *testing.T) {
	for name, p := range map[string]Predicate{
		"nil value":     Eq("id", nil),
		"empty in":      In("id"),
		"empty and":     And(),
		"bad column":    Eq("id; DROP TABLE adviser", 1),
		"nil in and":    And(Eq("id", 1), nil),
		"nil in values": In("id", 1, nil),
	} {
		t.Run(name, func(t *testing.T) {
			s := adviserSelect()
			s.Where = p

			_, _, err := s.Build(Postgres)
			assert.True(t, errors.Is(err, &errs.MalformedQueryError{}), "got %v", err)
		})
	}
}

func TestInvalidPage(t *testing.T) {
	for _, p := range []Page{{Index: -1, Size: 10}, {Index: 0, Size: 0}, {Index: 0, Size: 5, Sort: []Order{{Column: "id desc"}}}, {Index: math.MaxInt64 / 2, Size: 2000}} {
		s := adviserSelect()
		s.Page = &p

		_, _, err := s.Build(Postgres)
		assert.True(t, errors.Is(err, &errs.MalformedQueryError{}), "page %+v", p)
	}
}

func TestInsertUpdateDelete(t *testing.T) {
	sql, args, err := Insert{
		Table:     "bank",
		Values:    []Assignment{{"name", "AAAAAAAAAA"}, {"address", nil}},
		Returning: "id",
	}.Build(Postgres)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bank (name, address) VALUES ($1, $2) RETURNING id", sql)
	assert.Equal(t, []any{"AAAAAAAAAA", nil}, args)

	sql, args, err = Update{
		Table: "bank",
		Set:   []Assignment{{"name", "BBBBBBBBBB"}, {"address", "Dakar"}},
		Where: Eq("id", int64(4)),
	}.Build(SQLite)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE bank SET name = ?, address = ? WHERE id = ?", sql)
	assert.Equal(t, []any{"BBBBBBBBBB", "Dakar", int64(4)}, args)

	sql, args, err = Delete{Table: "bank", Where: Eq("id", int64(4))}.Build(Postgres)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bank WHERE id = $1", sql)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestUnfilteredWritesAreRejected(t *testing.T) {
	_, _, err := Update{Table: "bank", Set: []Assignment{{"name", "x"}}}.Build(Postgres)
	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))

	_, _, err = Delete{Table: "bank"}.Build(Postgres)
	assert.True(t, errors.Is(err, &errs.MalformedQueryError{}))
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "?", d.Placeholder(3))

	d, err = DialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, "$3", d.Placeholder(3))

	_, err = DialectFor("oracle")
	assert.Error(t, err)
}
