//go:build unit

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Run("writes JSON lines at or above the level", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		Configure(Config{Level: InfoLevel, Output: &buf})
		defer Configure(Config{Level: WarnLevel, Pretty: true})

		// Execute
		Debug().Msg("hidden")
		Info().Str("file", "courses.txt").Msg("loaded")

		// Check
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "one JSON line")
		assert.Equal(t, "loaded", entry["message"])
		assert.Equal(t, "courses.txt", entry["file"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("disabled level writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Config{Level: DisabledLevel, Output: &buf})
		defer Configure(Config{Level: WarnLevel, Pretty: true})

		Error().Msg("nothing")

		assert.Zero(t, buf.Len())
	})

	t.Run("fields are attached", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Config{Level: WarnLevel, Output: &buf})
		defer Configure(Config{Level: WarnLevel, Pretty: true})

		l := WithField("session", "abc")
		l.Warn().Msg("careful")

		assert.Contains(t, buf.String(), `"session":"abc"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("accepts known levels", func(t *testing.T) {
		for _, s := range []string{"debug", "info", "warn", "error", "disabled"} {
			l, err := ParseLevel(s)
			assert.NoError(t, err)
			assert.Equal(t, LogLevel(s), l)
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := ParseLevel("verbose")
		assert.Error(t, err)
	})
}
