package system

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHost() Host {
	return Host{
		EOL:  "\r\n",
		Arch: "arm64",
		CPUs: func() []CPU {
			return []CPU{
				{Model: "Test CPU", Hz: 3_200_000_000},
				{Model: "Test CPU"},
			}
		},
		HomeDir:  func() (string, error) { return "/home/tester", nil },
		Username: func() (string, error) { return "tester", nil },
	}
}

func TestParseFact(t *testing.T) {
	tests := []struct {
		arg  string
		want Fact
	}{
		{"--EOL", FactEOL},
		{"EOL", FactEOL},
		{"--cpus", FactCPUs},
		{"--homedir", FactHomeDir},
		{"--username", FactUsername},
		{"--architecture", FactArchitecture},
		{"--Architecture", FactArchitecture},
	}
	for _, tt := range tests {
		got, err := ParseFact(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "--", "--kernel", "-EOL x"} {
		_, err := ParseFact(bad)
		assert.ErrorIs(t, err, ErrUnknownFact, bad)
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		fact Fact
		want string
	}{
		{FactEOL, `"\r\n"` + "\n"},
		{FactCPUs, "Overall amount of CPUs: 2\n1. Test CPU (3.20 GHz)\n2. Test CPU\n"},
		{FactHomeDir, "/home/tester\n"},
		{FactUsername, "tester\n"},
		{FactArchitecture, "arm64\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.fact), func(t *testing.T) {
			var out bytes.Buffer
			p := NewProvider(&out, fakeHost())
			require.NoError(t, p.Print(context.Background(), tt.fact))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrintPropagatesHostErrors(t *testing.T) {
	host := fakeHost()
	host.HomeDir = func() (string, error) { return "", errors.New("no home") }

	var out bytes.Buffer
	err := NewProvider(&out, host).Print(context.Background(), FactHomeDir)
	assert.EqualError(t, err, "no home")
	assert.Empty(t, out.String())
}

func TestOsCommandRejectsUnknownFlag(t *testing.T) {
	p := NewProvider(&bytes.Buffer{}, fakeHost())
	cmd := p.Commands()[0]
	assert.Equal(t, "os", cmd.Name())

	_, err := cmd.Bind("--kernel")
	assert.ErrorIs(t, err, ErrUnknownFact)

	op, err := cmd.Bind("--architecture")
	require.NoError(t, err)
	assert.NoError(t, op(context.Background()))
}

func TestLocalHost(t *testing.T) {
	host := LocalHost()

	assert.Equal(t, runtime.GOARCH, host.Arch)
	cpus := host.CPUs()
	assert.Len(t, cpus, runtime.NumCPU())
	assert.NotEmpty(t, cpus[0].Model)
	if runtime.GOOS == "windows" {
		assert.Equal(t, "\r\n", host.EOL)
	} else {
		assert.Equal(t, "\n", host.EOL)
	}
}
