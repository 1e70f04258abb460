package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nick0a/founderbleed-sub001/internal/common"
	"github.com/nick0a/founderbleed-sub001/internal/model"
)

func TestResolvePeriod(t *testing.T) {
	events := []model.RawEvent{
		{
			Start: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		},
		{
			Start: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC),
		},
	}

	t.Run("explicit flags win", func(t *testing.T) {
		start, end, err := resolvePeriod("2025-03-01", "2025-03-15", events)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("derived from events when omitted", func(t *testing.T) {
		start, end, err := resolvePeriod("", "", events)
		require.NoError(t, err)
		assert.Equal(t, events[1].Start, start)
		assert.Equal(t, events[1].End, end)
	})

	t.Run("partial flags mix with derived span", func(t *testing.T) {
		start, end, err := resolvePeriod("2025-03-01", "", events)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, events[1].End, end)
	})

	t.Run("bad date format", func(t *testing.T) {
		_, _, err := resolvePeriod("03/01/2025", "", events)
		assert.Error(t, err)
	})

	t.Run("inverted period", func(t *testing.T) {
		_, _, err := resolvePeriod("2025-03-15", "2025-03-01", events)
		assert.ErrorIs(t, err, common.ErrInvalidPeriod)
	})
}
