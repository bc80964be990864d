package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, calls *[]Pair) *Dispatcher {
	t.Helper()

	r := NewRegistry()
	require.NoError(t, r.RegisterAll(
		noop(""),
		noop("ls"),
		Spec[Pair]{
			Use:   "rn",
			Parse: ParseTwoArgs,
			Run: func(_ context.Context, p Pair) error {
				*calls = append(*calls, p)
				return nil
			},
		},
		Spec[string]{
			Use:   "rm",
			Parse: SingleArg,
			Run: func(context.Context, string) error {
				return errors.New("boom")
			},
		},
	))
	return NewDispatcher(r)
}

func TestDispatcherParse(t *testing.T) {
	var calls []Pair
	d := newTestDispatcher(t, &calls)

	bound, err := d.Parse("rn \"old file\" \"new file\"\r\n")
	require.NoError(t, err)
	assert.Equal(t, "rn", bound.Command)
	assert.Empty(t, calls, "parse must not run the handler")

	require.NoError(t, bound.Execute(context.Background()))
	assert.Equal(t, []Pair{{"old file", "new file"}}, calls)
}

func TestDispatcherUnknownCommand(t *testing.T) {
	var calls []Pair
	d := newTestDispatcher(t, &calls)

	for _, line := range []string{"foo", "lsx", "rnm a b", ".exit"} {
		_, err := d.Parse(line)
		assert.ErrorIs(t, err, ErrUnknownCommand, line)
		assert.ErrorIs(t, err, ErrInvalidInput, line)
	}
}

func TestDispatcherInvalidArguments(t *testing.T) {
	var calls []Pair
	d := newTestDispatcher(t, &calls)

	for _, line := range []string{"rn a", "rn a b c", `rn "a" "b" "c"`, "ls extra", "rm"} {
		_, err := d.Parse(line)
		assert.ErrorIs(t, err, ErrInvalidArguments, line)
		assert.False(t, errors.Is(err, ErrUnknownCommand), line)
	}
	assert.Empty(t, calls)
}

func TestDispatcherEmptyLine(t *testing.T) {
	var calls []Pair
	d := newTestDispatcher(t, &calls)

	bound, err := d.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "", bound.Command)
	assert.NoError(t, bound.Execute(context.Background()))
}

func TestDispatcherHandlerErrorSurfaces(t *testing.T) {
	var calls []Pair
	d := newTestDispatcher(t, &calls)

	bound, err := d.Parse("rm file.txt")
	require.NoError(t, err)
	assert.EqualError(t, bound.Execute(context.Background()), "boom")
}
