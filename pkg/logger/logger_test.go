package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		" INFO ":  InfoLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"off":     Disabled,
		"unknown": InfoLevel,
	}

	for name, expected := range cases {
		require.Equal(t, expected, ParseLevel(name), name)
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "warn", WarnLevel.String())
	require.Equal(t, ParseLevel(TraceLevel.String()), TraceLevel)
}
