package apidate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampVariants(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339 with fractional seconds",
			input: "2026-08-29T07:30:15.123456Z",
			want:  time.Date(2026, 8, 29, 7, 30, 15, 123456000, time.UTC),
		},
		{
			name:  "rfc3339 without fractional seconds",
			input: "2026-08-29T07:30:15Z",
			want:  time.Date(2026, 8, 29, 7, 30, 15, 0, time.UTC),
		},
		{
			name:  "naive with fractional seconds",
			input: "2026-08-29T07:30:15.123456",
			want:  time.Date(2026, 8, 29, 7, 30, 15, 123456000, time.UTC),
		},
		{
			name:  "naive without fractional seconds",
			input: "2026-08-29T07:30:15",
			want:  time.Date(2026, 8, 29, 7, 30, 15, 0, time.UTC),
		},
		{
			name:  "offset zone normalizes to utc",
			input: "2026-08-29T09:30:15+02:00",
			want:  time.Date(2026, 8, 29, 7, 30, 15, 0, time.UTC),
		},
		{
			name:  "bare day",
			input: "2026-08-29",
			want:  time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not a date", "29/08/2026", "2026-13-01T00:00:00Z"} {
		_, err := ParseTimestamp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTimeJSONRoundTrip(t *testing.T) {
	in := New(time.Date(2026, 8, 29, 7, 30, 15, 123456000, time.UTC))

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29T07:30:15.123456Z"`, string(data))

	var out Time
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Equal(out.Time))
}

func TestTimeUnmarshalNullIsNoop(t *testing.T) {
	var out Time
	require.NoError(t, json.Unmarshal([]byte(`null`), &out))
	assert.True(t, out.IsZero())
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("2026-2-1")
	assert.Error(t, err)

	_, err = ParseDay("2026-02-01T00:00:00Z")
	assert.Error(t, err)
}

func TestDayOfTruncates(t *testing.T) {
	d := DayOf(time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2026-08-29", d.String())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(data))
}

func TestDayStringUsesUTCDay(t *testing.T) {
	zone := time.FixedZone("plus-12", 12*60*60)
	local := time.Date(2026, 8, 30, 2, 0, 0, 0, zone)
	assert.Equal(t, "2026-08-29", DayString(local))
}
