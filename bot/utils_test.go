package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		balance  int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{5000, "5,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalance(tt.balance))
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		expected  string
	}{
		{13*time.Hour + 42*time.Minute, "13h 42m"},
		{13*time.Hour + 42*time.Minute + 59*time.Second, "13h 42m"},
		{24 * time.Hour, "24h 0m"},
		{59 * time.Second, "0h 0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatRemaining(tt.remaining))
	}
}
