package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setVars(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestLinkedValuesWin(t *testing.T) {
	setVars(t, "v1.2.3", "0123456789abcdef", "2026-01-02")

	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "v1.2.3 (0123456, built 2026-01-02)", GetFullVersion())
	assert.Equal(t, Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: "2026-01-02"}, GetInfo())
}

func TestFullVersionWithoutDate(t *testing.T) {
	setVars(t, "v1.0.0", "fedcba9876543210", "")

	info := GetInfo()
	if info.Date != "unknown" {
		t.Skip("build info carries a vcs time")
	}
	assert.Equal(t, "v1.0.0 (fedcba9)", GetFullVersion())
}

func TestDevelopmentFallback(t *testing.T) {
	setVars(t, "dev", "unknown", "unknown")

	assert.NotEmpty(t, GetVersion())
	assert.NotEmpty(t, GetFullVersion())
}
