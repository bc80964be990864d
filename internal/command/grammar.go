package command

import (
	"strings"
	"unicode"
)

// Pair holds the two logical tokens of a two-argument command.
type Pair struct {
	First  string
	Second string
}

// NoArgs accepts only an empty argument string.
func NoArgs(args string) (struct{}, error) {
	if strings.TrimSpace(args) != "" {
		return struct{}{}, ErrUnexpectedArgs
	}
	return struct{}{}, nil
}

// SingleArg accepts any non-empty trimmed string, spaces included.
func SingleArg(args string) (string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", ErrMissingArg
	}
	return args, nil
}

// ParseTwoArgs splits input into two tokens.
//
// Quoted form: the first character is ' or " and that character must occur
// exactly four times; the tokens are the text between quotes 1-2 and 3-4.
// The closing quote must end the input and the quoted pairs must be separated
// by whitespace.
//
// Unquoted form: the input is split on single spaces and must yield exactly
// two non-empty tokens.
func ParseTwoArgs(input string) (Pair, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Pair{}, ErrMissingArg
	}

	if isQuote(input[0]) {
		return parseQuoted(input, input[0])
	}

	tokens := strings.Split(input, " ")
	if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" {
		return Pair{}, ErrTokenCount
	}
	return Pair{First: tokens[0], Second: tokens[1]}, nil
}

func parseQuoted(input string, quote byte) (Pair, error) {
	positions := make([]int, 0, 4)
	for i := 0; i < len(input); i++ {
		if input[i] == quote {
			positions = append(positions, i)
		}
	}
	if len(positions) != 4 {
		return Pair{}, ErrQuoteCount
	}
	if positions[3] != len(input)-1 {
		return Pair{}, ErrQuoteCount
	}

	gap := input[positions[1]+1 : positions[2]]
	if gap == "" || strings.TrimFunc(gap, unicode.IsSpace) != "" {
		return Pair{}, ErrQuoteCount
	}

	pair := Pair{
		First:  input[positions[0]+1 : positions[1]],
		Second: input[positions[2]+1 : positions[3]],
	}
	if pair.First == "" || pair.Second == "" {
		return Pair{}, ErrMissingArg
	}
	return pair, nil
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
