package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func startIn(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FM_START_DIR", dir)
	t.Setenv("FM_CONFIG", "")
	t.Setenv("FM_COLOR", "false")
	return dir
}

func TestUsernameFlag(t *testing.T) {
	dir := startIn(t)

	out := execute(t, ".exit\n", "--username=Ada")

	assert.Contains(t, out, "Welcome to the File Manager, Ada!")
	assert.Contains(t, out, "You are currently in "+dir)
	assert.Contains(t, out, "Thank you for using File Manager, Ada, goodbye!")
}

func TestDefaultUsername(t *testing.T) {
	startIn(t)

	out := execute(t, "")

	assert.Contains(t, out, "Welcome to the File Manager, Username!")
	assert.Contains(t, out, "Thank you for using File Manager, Username, goodbye!")
}

func TestUnknownArgumentsIgnored(t *testing.T) {
	startIn(t)

	out := execute(t, ".exit\n", "--verbose", "extra", "--username=Bo")

	assert.Contains(t, out, "Welcome to the File Manager, Bo!")
}

func TestConfigFile(t *testing.T) {
	dir := startIn(t)
	cfgPath := filepath.Join(t.TempDir(), "fm.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"shell:\n  default_username: Grace\n"+
			"files:\n  codec: zstd\n  hash: sha256\n  ls_concurrency: 4\n  buffer_size: 4096\n",
	), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("data"), 0o644))

	out := execute(t, "compress a.txt .\n.exit\n", "--config", cfgPath)

	assert.Contains(t, out, "Welcome to the File Manager, Grace!")
	assert.NotContains(t, out, "Operation failed")
	assert.FileExists(t, filepath.Join(dir, "a.txt.zst"))
}

func TestInvalidConfig(t *testing.T) {
	startIn(t)
	t.Setenv("FM_HASH", "md4")

	cmd := newRootCmd()
	cmd.SetArgs(nil)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
