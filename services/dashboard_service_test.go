package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSleepDuration(t *testing.T) {
	assert.Equal(t, "7h45min", formatSleepDuration(465))
	assert.Equal(t, "8h00min", formatSleepDuration(480))
	assert.Equal(t, "0h05min", formatSleepDuration(5))
	assert.Equal(t, "0h00min", formatSleepDuration(0))
}
