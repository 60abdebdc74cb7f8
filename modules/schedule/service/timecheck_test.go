package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTimeCompatible(t *testing.T) {
	window := "10:00 AM - 12:00 PM"

	tests := []struct {
		name      string
		requested string
		window    string
		want      bool
	}{
		{"inside window", "10:25 AM", window, true},
		{"at window start", "10:00 AM", window, true},
		{"at window end", "12:00 PM", window, true},
		{"within buffer before start", "9:35 AM", window, true},
		{"exactly buffer before start", "9:30 AM", window, true},
		{"beyond buffer before start", "9:00 AM", window, false},
		{"within buffer after end", "12:25 PM", window, true},
		{"beyond buffer after end", "1:00 PM", window, false},
		{"afternoon slot", "02:15 PM", "01:00 PM - 03:00 PM", true},
		{"morning time on afternoon slot", "09:00 AM", "01:00 PM - 03:00 PM", false},
		{"noon parses as 12 PM", "12:10 PM", "11:00 AM - 01:00 PM", true},
		{"midnight parses as 12 AM", "12:05 AM", "09:00 AM - 11:00 AM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeCompatible(tt.requested, tt.window))
		})
	}
}

func TestIsTimeCompatibleFailsOpen(t *testing.T) {
	// unknown or malformed times never block placement
	assert.True(t, IsTimeCompatible("", "10:00 AM - 12:00 PM"))
	assert.True(t, IsTimeCompatible("around lunch", "10:00 AM - 12:00 PM"))
	assert.True(t, IsTimeCompatible("25:99 XM", "10:00 AM - 12:00 PM"))
	// malformed windows fail open too
	assert.True(t, IsTimeCompatible("10:00 AM", "whenever"))
	assert.True(t, IsTimeCompatible("10:00 AM", ""))
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10:00 AM", 600, true},
		{"12:00 PM", 720, true},
		{"12:00 AM", 0, true},
		{"1:05 PM", 785, true},
		{"11:59 pm", 1439, true},
		{" 9:15 AM ", 555, true},
		{"13:00 PM", 0, false},
		{"10:60 AM", 0, false},
		{"10 AM", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseClockMinutes(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
