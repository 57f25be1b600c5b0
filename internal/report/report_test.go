package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsKeepsWireKeyOrder(t *testing.T) {
	payload := []byte(`[
		{"Tanggal":"2024-05-01","Nama":"Ahmad","NIP":1985,"Status":"HADIR"},
		{"Tanggal":"2024-05-02","Nama":"Siti","NIP":1970,"Status":"IZIN"}
	]`)
	rows, err := ParseRows(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tanggal", "Nama", "NIP", "Status"}, rows.Keys)
	require.Len(t, rows.Rows, 2)
}

func TestCSVOutput(t *testing.T) {
	payload := []byte(`[{"Nama":"Ahmad","Hadir":18,"Aktif":true,"Catatan":null}]`)
	rows, err := ParseRows(payload)
	require.NoError(t, err)

	want := "Nama,Hadir,Aktif,Catatan\n\"Ahmad\",\"18\",\"true\",\"\""
	assert.Equal(t, want, rows.CSV())
}

func TestCSVEmpty(t *testing.T) {
	rows, err := ParseRows([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, rows.Empty())
	assert.Empty(t, rows.CSV())
}

func TestParseRowsRejectsNonArray(t *testing.T) {
	_, err := ParseRows([]byte(`{"error":"nope"}`))
	assert.Error(t, err)
}

func TestParseRowsNestedValuesSkipped(t *testing.T) {
	payload := []byte(`[{"a":{"deep":[1,2]},"b":"x"}]`)
	rows, err := ParseRows(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rows.Keys)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Laporan_Absensi_2024-05-01_2024-05-31.csv", Filename("2024-05-01", "2024-05-31"))
}
