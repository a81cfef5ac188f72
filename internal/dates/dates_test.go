package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockExtractsUTC(t *testing.T) {
	// A TIME value scanned in a non-UTC session zone must not shift.
	loc := time.FixedZone("UTC+7", 7*60*60)
	anchored := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "09:00:00", Clock(anchored))
}

func TestDayTruncatesInUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 23:30 local on Jan 1 is already Jan 2 in UTC.
	late := time.Date(2026, 1, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, "2026-01-02", Day(late))
}

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00:00"},
		{in: "09:00:30", want: "09:00:30"},
		{in: "23:59", want: "23:59:00"},
		{in: "9am", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := NormalizeClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay("2026-08-28"))
	assert.False(t, ValidDay("28-08-2026"))
	assert.False(t, ValidDay("2026-13-01"))
	assert.False(t, ValidDay("today"))
}
