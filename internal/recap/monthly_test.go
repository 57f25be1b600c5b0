package recap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyUniqueDays(t *testing.T) {
	punches := []Punch{
		{NIP: "001", Type: PunchIn, Timestamp: "2024-05-01T07:00:00"},
		{NIP: "001", Type: PunchIn, Timestamp: "2024-05-01T12:30:00"},
		{NIP: "001", Type: PunchIn, Timestamp: "2024-05-02T07:05:00"},
	}
	recaps := Monthly(onePerson("001"), punches)
	require.Len(t, recaps, 1)
	assert.Equal(t, 2, recaps[0].PresentCount)
	assert.InDelta(t, 10.0, recaps[0].Percentage, 1e-9)
}

func TestMonthlyIgnoresOutPunches(t *testing.T) {
	punches := []Punch{
		{NIP: "001", Type: PunchIn, Timestamp: "2024-05-01T07:00:00"},
		{NIP: "001", Type: PunchOut, Timestamp: "2024-05-02T15:00:00"},
	}
	recaps := Monthly(onePerson("001"), punches)
	require.Len(t, recaps, 1)
	assert.Equal(t, 1, recaps[0].PresentCount)
}

func TestMonthlyExcludesInvalidTimestamps(t *testing.T) {
	punches := []Punch{
		{NIP: "001", Type: PunchIn, Timestamp: "bukan tanggal"},
		{NIP: "001", Type: PunchIn, Timestamp: ""},
		{NIP: "001", Type: PunchIn, Timestamp: "2024-05-03T07:00:00"},
	}
	recaps := Monthly(onePerson("001"), punches)
	require.Len(t, recaps, 1)
	assert.Equal(t, 1, recaps[0].PresentCount)
}

func TestMonthlyPercentageNotClamped(t *testing.T) {
	var punches []Punch
	for day := 1; day <= 25; day++ {
		punches = append(punches, Punch{
			NIP:       "001",
			Type:      PunchIn,
			Timestamp: timeOnDay(day),
		})
	}
	recaps := Monthly(onePerson("001"), punches)
	require.Len(t, recaps, 1)
	assert.Equal(t, 25, recaps[0].PresentCount)
	assert.InDelta(t, 125.0, recaps[0].Percentage, 1e-9)
}

func TestMonthlyZeroPunches(t *testing.T) {
	recaps := Monthly(onePerson("001"), nil)
	require.Len(t, recaps, 1)
	assert.Equal(t, 0, recaps[0].PresentCount)
	assert.Zero(t, recaps[0].Percentage)
}

func timeOnDay(day int) string {
	return fmt.Sprintf("2024-05-%02dT07:00:00", day)
}
