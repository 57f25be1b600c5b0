package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensi/internal/sheetcsv"
)

func TestFromRecordsSkipsMissingNIP(t *testing.T) {
	records := []sheetcsv.Record{
		{"Username": "guru1", "NIP": "001", "Nama": "Ahmad"},
		{"Username": "tanpa-nip", "Nama": "Orphan"},
		{"Username": "guru2", "NIP": "002"},
	}
	people := FromRecords(records)
	require.Len(t, people, 2)
	assert.Equal(t, "001", people[0].NIP)
	assert.Equal(t, "002", people[1].NIP)
}

func TestOperationalExcludesAdminRoles(t *testing.T) {
	people := []Person{
		{NIP: "001", Role: "Guru"},
		{NIP: "002", Role: RoleAdmin},
		{NIP: "003", Role: RoleSuperadmin},
		{NIP: "004", Role: "Staf TU"},
	}
	ops := Operational(people)
	require.Len(t, ops, 2)
	assert.Equal(t, "001", ops[0].NIP)
	assert.Equal(t, "004", ops[1].NIP)
}

func TestDisplayNamePrefersFullName(t *testing.T) {
	assert.Equal(t, "Ahmad", Person{Username: "guru1", Name: "Ahmad"}.DisplayName())
	assert.Equal(t, "guru1", Person{Username: "guru1"}.DisplayName())
}

func TestFallbackRoster(t *testing.T) {
	people := Fallback()
	require.GreaterOrEqual(t, len(people), 2)
	for _, p := range people {
		assert.NotEmpty(t, p.NIP)
		assert.NotEmpty(t, p.Name)
	}
	// One operational member survives admin filtering, so the dashboard
	// still has something to show.
	assert.NotEmpty(t, Operational(people))
}
