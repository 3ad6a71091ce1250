package greeting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcticwolves/clubkit/pkg/greeting"
)

func TestForTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want string
	}{
		{0, "Good evening"},
		{4, "Good evening"},
		{5, "Good morning"},
		{9, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}

	for _, tt := range tests {
		at := time.Date(2025, time.March, 10, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.want, greeting.ForTime(at), "hour %d", tt.hour)
	}
}

func TestNow(t *testing.T) {
	t.Parallel()

	got := greeting.Now()
	assert.Contains(t, []string{"Good morning", "Good afternoon", "Good evening"}, got)
}
