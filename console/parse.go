package console

import (
	"errors"
	"strings"

	"github.com/google/shlex"
)

var ErrMalformedArgument = errors.New("malformed quoted argument")

// ParseCommand splits a line into its keyword (the leading run of non-space
// bytes) and the remainder. Both are trimmed of surrounding whitespace.
func ParseCommand(line string) (keyword, args string) {
	end := strings.IndexByte(line, ' ')
	if end < 0 {
		end = len(line)
	}
	return strings.TrimSpace(line[:end]), strings.TrimSpace(line[end:])
}

// ParseArgument extracts a double-quoted string: everything before the first
// quote is dropped, the rest is trimmed and must end with the closing quote.
//
//	ParseArgument(`name "hello world" `) == "hello world"
func ParseArgument(s string) (string, error) {
	i := strings.IndexByte(s, '"')
	if i < 0 {
		return "", ErrMalformedArgument
	}
	s = strings.TrimSpace(s[i:])
	if len(s) < 2 || s[len(s)-1] != '"' {
		return "", ErrMalformedArgument
	}
	return s[1 : len(s)-1], nil
}

// SplitArguments splits a remainder into words using shell quoting rules.
func SplitArguments(args string) ([]string, error) {
	words, err := shlex.Split(args)
	if err != nil {
		return nil, errors.Join(ErrMalformedArgument, err)
	}
	return words, nil
}
