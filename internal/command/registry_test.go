package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(use string) Command {
	return Spec[struct{}]{
		Use:   use,
		Parse: NoArgs,
		Run:   func(context.Context, struct{}) error { return nil },
	}
}

func single(use string, got *string) Command {
	return Spec[string]{
		Use:   use,
		Parse: SingleArg,
		Run: func(_ context.Context, arg string) error {
			*got = arg
			return nil
		},
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noop("ls")))
	require.NoError(t, r.Register(noop("up")))

	_, ok := r.Get("ls")
	assert.True(t, ok)
	assert.Equal(t, []string{"ls", "up"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noop("ls")))

	err := r.Register(noop("ls"))
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.ErrorIs(t, r.Register(nil), ErrNilCommand)
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(
		noop(""),
		noop("c"),
		noop("cp"),
		noop("compress"),
		noop("cpx"),
	))

	tests := []struct {
		line     string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{line: "", wantName: "", wantOK: true},
		{line: "   ", wantName: "", wantOK: true},
		{line: "cp a b", wantName: "cp", wantArgs: "a b", wantOK: true},
		{line: "cpx", wantName: "cpx", wantOK: true},
		{line: "c", wantName: "c", wantOK: true},
		{line: "compress  a.txt   dir ", wantName: "compress", wantArgs: "a.txt   dir", wantOK: true},
		{line: "cpy a b", wantOK: false},
		{line: "compressor", wantOK: false},
		{line: "rm x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args, ok := r.Lookup(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, cmd.Name())
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLookupLongestWinsRegardlessOfOrder(t *testing.T) {
	forward := NewRegistry()
	require.NoError(t, forward.RegisterAll(noop("do"), noop("do it")))
	backward := NewRegistry()
	require.NoError(t, backward.RegisterAll(noop("do it"), noop("do")))

	for _, r := range []*Registry{forward, backward} {
		cmd, args, ok := r.Lookup("do it")
		require.True(t, ok)
		assert.Equal(t, "do it", cmd.Name())
		assert.Empty(t, args)
	}
}

func TestSpecBind(t *testing.T) {
	var got string
	cmd := single("cat", &got)

	op, err := cmd.Bind("  notes.txt ")
	require.NoError(t, err)
	require.NoError(t, op(context.Background()))
	assert.Equal(t, "notes.txt", got)

	_, err = cmd.Bind("")
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrMissingArg)
}
