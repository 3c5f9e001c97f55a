package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "no completions",
			dates: nil,
			want:  0,
		},
		{
			name:  "streak ending today",
			dates: []time.Time{day(2026, 8, 29), day(2026, 8, 28), day(2026, 8, 27)},
			want:  3,
		},
		{
			name:  "today not done yet counts through yesterday",
			dates: []time.Time{day(2026, 8, 28), day(2026, 8, 27)},
			want:  2,
		},
		{
			name:  "gap breaks the streak",
			dates: []time.Time{day(2026, 8, 29), day(2026, 8, 27), day(2026, 8, 26)},
			want:  1,
		},
		{
			name:  "last completion two days ago is no streak",
			dates: []time.Time{day(2026, 8, 27), day(2026, 8, 26)},
			want:  0,
		},
		{
			name:  "single completion today",
			dates: []time.Time{day(2026, 8, 29)},
			want:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, currentStreak(tc.dates, now))
		})
	}
}
