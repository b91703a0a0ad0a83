package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityIsByIDOnly(t *testing.T) {
	a := &Adviser{ID: Ptr(int64(1)), Department: Ptr("AAAAAAAAAA")}
	b := &Adviser{ID: Ptr(int64(1)), Department: Ptr("BBBBBBBBBB")}
	c := &Adviser{ID: Ptr(int64(2))}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestEntitiesWithoutIDAreNeverEqual(t *testing.T) {
	a := &Bank{Name: Ptr("AAAAAAAAAA")}

	assert.False(t, a.Equal(a))
	assert.False(t, a.Equal(&Bank{Name: Ptr("AAAAAAAAAA")}))
}

func TestSetAssociationSyncsForeignKey(t *testing.T) {
	a := &Adviser{}

	a.SetBank(&Bank{ID: Ptr(int64(5))})
	require.NotNil(t, a.BankID)
	assert.Equal(t, int64(5), *a.BankID)
	assert.NotNil(t, a.Bank())

	a.SetBank(nil)
	assert.Nil(t, a.BankID)
	assert.Nil(t, a.Bank())
}

func TestSetForeignKeyDropsStaleAssociation(t *testing.T) {
	m := &Manager{}
	m.SetCompany(&Company{ID: Ptr(int64(3))})

	m.SetCompanyID(Ptr(int64(3)))
	assert.NotNil(t, m.Company())

	m.SetCompanyID(Ptr(int64(4)))
	assert.Nil(t, m.Company())
	assert.Equal(t, int64(4), *m.CompanyID)
}

func TestSetAssociationCopiesID(t *testing.T) {
	bank := &Bank{ID: Ptr(int64(5))}
	a := &Adviser{}
	a.SetBank(bank)

	*bank.ID = 6
	assert.Equal(t, int64(5), *a.BankID)
}

func TestMergeOverwritesOnlyNonNilFields(t *testing.T) {
	when := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &Appointment{
		ID:           Ptr(int64(1)),
		Reason:       Ptr("AAAAAAAAAA"),
		Date:         &when,
		State:        Ptr(false),
		ReportReason: Ptr("AAAAAAAAAA"),
		AdviserID:    Ptr(int64(7)),
	}
	existing.SetManager(&Manager{ID: Ptr(int64(8))})

	existing.Merge(&Appointment{Reason: Ptr("BBBBBBBBBB"), State: Ptr(true)})

	assert.Equal(t, "BBBBBBBBBB", *existing.Reason)
	assert.True(t, *existing.State)
	assert.Equal(t, "AAAAAAAAAA", *existing.ReportReason)
	assert.True(t, when.Equal(*existing.Date))
	assert.Equal(t, int64(7), *existing.AdviserID)
	assert.NotNil(t, existing.Manager())
}

func TestMergeForeignKeyUsesSetter(t *testing.T) {
	a := &Adviser{}
	a.SetUser(&User{ID: Ptr(int64(1))})

	a.Merge(&Adviser{UserID: Ptr(int64(2))})

	assert.Equal(t, int64(2), *a.UserID)
	assert.Nil(t, a.User())
}

func TestMarshalIncludesLoadedAssociations(t *testing.T) {
	a := &Adviser{ID: Ptr(int64(1))}
	a.SetBank(&Bank{ID: Ptr(int64(3)), Name: Ptr("BNP")})

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "registrationNumber": null, "company": null, "department": null,
		"userId": null, "bankId": 3,
		"bank": {"id": 3, "name": "BNP", "address": null}
	}`, string(out))
}
