package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/raykavin/uberdash/internal/config"
	"github.com/raykavin/uberdash/pkg/dataset"
	"github.com/raykavin/uberdash/pkg/page"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(config.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCmd(t *testing.T) {
	out, err := execute(t, "layout")
	require.NoError(t, err)

	expected, err := json.Marshal(page.BuildLayout(dataset.Records()))
	require.NoError(t, err)
	require.JSONEq(t, string(expected), out)
}

func TestDataCmd(t *testing.T) {
	out, err := execute(t, "data")
	require.NoError(t, err)

	require.Contains(t, out, "HOUR")
	require.Contains(t, out, "BROOKLYN")
	require.Contains(t, out, "MANHATTAN")
	require.Contains(t, out, "$24.60")
	require.Contains(t, out, "Manhattan PRICE DISTRIBUTION")
}

func TestDataCmd_Series(t *testing.T) {
	out, err := execute(t, "data", "--series", "Brooklyn")
	require.NoError(t, err)
	require.Contains(t, out, "BROOKLYN")
	require.NotContains(t, out, "MANHATTAN")

	_, err = execute(t, "data", "--series", "Queens")
	require.ErrorContains(t, err, `unknown series "Queens"`)
}

func TestServeCmd_InvalidConfig(t *testing.T) {
	t.Setenv("UBERDASH_LOG_LEVEL", "loud")

	_, err := execute(t, "serve")
	require.ErrorContains(t, err, "invalid log level")
}
