package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwoArgs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pair
		wantErr error
	}{
		{name: "double quoted with spaces", input: `"a b" "c"`, want: Pair{"a b", "c"}},
		{name: "single quoted", input: `'old name.txt' 'new name.txt'`, want: Pair{"old name.txt", "new name.txt"}},
		{name: "unquoted", input: "a b", want: Pair{"a", "b"}},
		{name: "surrounding whitespace", input: "  src.txt  dest  ", wantErr: ErrTokenCount},
		{name: "trimmed unquoted", input: "  src.txt dest  ", want: Pair{"src.txt", "dest"}},
		{name: "three quoted", input: `"a" "b" "c"`, wantErr: ErrQuoteCount},
		{name: "three tokens", input: "a b c", wantErr: ErrTokenCount},
		{name: "one token", input: "a", wantErr: ErrTokenCount},
		{name: "double space", input: "a  b", wantErr: ErrTokenCount},
		{name: "unmatched quote", input: `"a b" "c`, wantErr: ErrQuoteCount},
		{name: "embedded quote", input: `"a"b" "c"`, wantErr: ErrQuoteCount},
		{name: "trailing text", input: `"a" "b" c`, wantErr: ErrQuoteCount},
		{name: "no separator", input: `"a""b"`, wantErr: ErrQuoteCount},
		{name: "mixed quote styles", input: `"a" 'b'`, wantErr: ErrQuoteCount},
		{name: "other quote inside", input: `"it's" "fine"`, want: Pair{"it's", "fine"}},
		{name: "empty quoted token", input: `"" "b"`, wantErr: ErrMissingArg},
		{name: "empty", input: "   ", wantErr: ErrMissingArg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTwoArgs(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSingleArg(t *testing.T) {
	got, err := SingleArg("  my file.txt ")
	require.NoError(t, err)
	assert.Equal(t, "my file.txt", got)

	_, err = SingleArg(" \t ")
	assert.ErrorIs(t, err, ErrMissingArg)
}

func TestNoArgs(t *testing.T) {
	_, err := NoArgs("")
	assert.NoError(t, err)

	_, err = NoArgs("extra")
	assert.ErrorIs(t, err, ErrUnexpectedArgs)
}
