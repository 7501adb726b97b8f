package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationFromMicrosKeepsSubSecondPrecision(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, durationFromMicros(1_500_000))
	assert.Equal(t, 42*time.Microsecond, durationFromMicros(42))
	assert.Equal(t, 2*time.Hour+1*time.Microsecond, durationFromMicros(7_200_000_001))
}
