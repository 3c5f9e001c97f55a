package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/sleep"
)

func TestCreateSleepLogValidation(t *testing.T) {
	svc := NewSleepService(nil)

	start := apidate.New(time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC))
	end := apidate.New(time.Date(2026, 8, 29, 6, 45, 0, 0, time.UTC))

	_, err := svc.CreateSleepLog(context.Background(), 1, &sleep.CreateSleepLogRequest{
		StartTime: end,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidSleepRange)

	_, err = svc.CreateSleepLog(context.Background(), 1, &sleep.CreateSleepLogRequest{
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidSleepRange, "zero-length sleep is invalid")

	bad := sleep.Quality("amazing")
	_, err = svc.CreateSleepLog(context.Background(), 1, &sleep.CreateSleepLogRequest{
		StartTime: start,
		EndTime:   end,
		Quality:   &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidSleepQuality)
}
