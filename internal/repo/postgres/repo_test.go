package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextArray(t *testing.T) {
	testCases := []struct {
		name   string
		values []string
		want   any
	}{
		{name: "nil", values: nil, want: "{}"},
		{name: "empty", values: []string{}, want: "{}"},
		{name: "values", values: []string{"https://img.example/1.png", "https://img.example/2.png"}, want: `{"https://img.example/1.png","https://img.example/2.png"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := textArray(tc.values).Value()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListRecentOrdersLimit(t *testing.T) {
	testCases := []struct {
		name  string
		limit int
		want  uint64
	}{
		{name: "positive", limit: 25, want: 25},
		{name: "zero", limit: 0, want: 0},
		{name: "negative", limit: -3, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recentLimit(tc.limit))
		})
	}
}
