package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}

	_, ok := ParseLevel("")
	require.False(t, ok)
	_, ok = ParseLevel("loud")
	require.False(t, ok)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogTimestamp, "nope")
	t.Setenv(EnvLogJSON, "1")

	cfg := DefaultConfig(&bytes.Buffer{})
	cfg.NoColor = false
	ApplyEnv(&cfg)
	require.Equal(t, zerolog.DebugLevel, cfg.Level)
	require.True(t, cfg.NoColor)
	require.False(t, cfg.Timestamp)
	require.True(t, cfg.JSON)
}

func TestDefaultConfig_NonTerminal(t *testing.T) {
	cfg := DefaultConfig(&bytes.Buffer{})
	require.Equal(t, zerolog.InfoLevel, cfg.Level)
	require.True(t, cfg.NoColor)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: zerolog.InfoLevel, NoColor: true})
	log.Debug().Msg("hidden")
	log.Info().Int("n", 3).Msg("matched")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "matched")
	require.Contains(t, out, "n=3")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: zerolog.DebugLevel, JSON: true})
	log.Debug().Msg("hello")
	require.Equal(t, `{"level":"debug","message":"hello"}`+"\n", buf.String())
}
