package pagequery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsNormalizedLimitMax(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		max     int
		want    int
		inRange bool
	}{
		{"zero falls back to default", 0, 50, DefaultLimit, false},
		{"negative falls back to default", -10, 50, DefaultLimit, false},
		{"page size within max", 7, 50, 7, true},
		{"page size equal to max", 50, 50, 50, true},
		{"page size above max", 51, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inRange := IsNormalizedLimitMax(tt.limit, tt.max)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.inRange, inRange)
		})
	}
}

func Test_NormalizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, DefaultLimit},
		{"no limit marker", NoLimit, DefaultLimit},
		{"above MaxLimit", MaxLimit + 1, MaxLimit},
		{"regular", 17, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLimit(tt.limit))
		})
	}

	assert.Equal(t, 77, NormalizeLimitMax(1000, 77))
}

func Test_NormalizePage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -4, 1},
		{"third page", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePage(tt.page))
		})
	}
}
