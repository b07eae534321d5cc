package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	zone := time.FixedZone("", 2*3600)
	stamp := time.Date(2024, time.March, 1, 12, 30, 15, 42, zone)

	dt := NewDateTime(stamp)
	assert.Equal(t, stamp.Unix(), dt.Seconds)
	assert.Equal(t, int64(42), dt.Nanos)
	assert.Equal(t, int64(2*3600), dt.TZOffsetSecs)
	assert.True(t, stamp.Equal(dt.Time()))
}

func TestDateTime(t *testing.T) {
	epoch := Date{Days: 0}
	assert.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), epoch.Time())

	leap := Date{Days: 19783}
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), leap.Time())
}

func TestClockTimes(t *testing.T) {
	noon := LocalTime{Nanos: 12 * 3600 * 1e9}
	assert.Equal(t, 12, noon.Time().Hour())

	offset := Time{Nanos: 12 * 3600 * 1e9, TZOffsetSecs: 3600}
	assert.Equal(t, 13, offset.Time().Hour())
	_, off := offset.Time().Zone()
	assert.Equal(t, 3600, off)
}

func TestDateTimeZoneId(t *testing.T) {
	zoned := DateTimeZoneId{Seconds: 1709295015, ZoneId: "UTC"}
	got, err := zoned.Time()
	require.NoError(t, err)
	assert.Equal(t, int64(1709295015), got.Unix())

	_, err = DateTimeZoneId{ZoneId: "Not/AZone"}.Time()
	require.Error(t, err)
}
