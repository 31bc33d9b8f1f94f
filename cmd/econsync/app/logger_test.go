package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both flags prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level", Config{LogLevel: "error"}, "error"},
		{"verbose beats level", Config{Verbose: true, LogLevel: "error"}, "debug"},
		{"invalid level falls back", Config{LogLevel: "shout"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	c := &Config{DataFile: "data/economics.json", LogLevel: "info"}

	c.UpdateFromFlags(true, false, true, "", "")

	assert.True(t, c.Verbose)
	assert.True(t, c.NoColor)
	assert.Equal(t, "data/economics.json", c.DataFile, "empty flag keeps existing path")
	assert.Equal(t, "info", c.LogLevel, "empty flag keeps existing level")

	c.UpdateFromFlags(false, true, false, "/tmp/other.json", "debug")
	assert.Equal(t, "/tmp/other.json", c.DataFile)
	assert.Equal(t, "debug", c.LogLevel)
}
