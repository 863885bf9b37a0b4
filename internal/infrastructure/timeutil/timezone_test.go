package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation_Athens(t *testing.T) {
	loc, err := GetLocation(Athens)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Athens", loc.String())
}

func TestGetLocation_Invalid(t *testing.T) {
	loc, err := GetLocation("Invalid/Timezone")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "Invalid/Timezone")
}

func TestGetLocation_Caching(t *testing.T) {
	clearLocationCache()

	loc1, err := GetLocation(Athens)
	require.NoError(t, err)
	loc2, err := GetLocation(Athens)
	require.NoError(t, err)

	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	clearLocationCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := GetLocation(Athens)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestMustGetLocation(t *testing.T) {
	assert.NotPanics(t, func() { MustGetLocation(UTC) })
	assert.Panics(t, func() { MustGetLocation("Invalid/Timezone") })
}

func TestParseDeparture(t *testing.T) {
	athens := MustGetLocation(Athens)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "minutes without offset",
			value: "2025-06-01T08:00",
			want:  time.Date(2025, 6, 1, 8, 0, 0, 0, athens),
		},
		{
			name:  "seconds without offset",
			value: "2025-06-01T21:30:00",
			want:  time.Date(2025, 6, 1, 21, 30, 0, 0, athens),
		},
		{
			name:  "space separated",
			value: "2025-06-01 21:30",
			want:  time.Date(2025, 6, 1, 21, 30, 0, 0, athens),
		},
		{
			name:  "explicit offset wins",
			value: "2025-06-01T08:00:00Z",
			want:  time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
		{name: "garbage", value: "tomorrow morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeparture(tt.value, Athens)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseDeparture_InvalidTimezone(t *testing.T) {
	_, err := ParseDeparture("2025-06-01T08:00", "Invalid/Timezone")
	assert.Error(t, err)
}

func TestFormatDeparture(t *testing.T) {
	assert.Equal(t, "Sun 01 Jun 2025 08:00 EEST", FormatDeparture("2025-06-01T08:00", Athens))
	assert.Equal(t, "Sun 01 Jun 2025 11:00 EEST", FormatDeparture("2025-06-01T08:00:00Z", Athens))
	assert.Equal(t, "soon", FormatDeparture("soon", Athens))
}

// clearLocationCache empties the location cache.
func clearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
