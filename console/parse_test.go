package console

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tcs := []struct {
		line, keyword, args string
	}{
		{line: "set volume 5", keyword: "set", args: "volume 5"},
		{line: "help", keyword: "help", args: ""},
		{line: "echo   padded   ", keyword: "echo", args: "padded"},
		{line: "  ", keyword: "", args: ""},
		{line: " lead", keyword: "", args: "lead"},
		{line: "tab\tsep x", keyword: "tab\tsep", args: "x"},
		{line: "say \"a b\"", keyword: "say", args: "\"a b\""},
		{line: "", keyword: "", args: ""},
	}

	for _, tc := range tcs {
		kw, args := ParseCommand(tc.line)
		if kw != tc.keyword || args != tc.args {
			t.Fatalf("ParseCommand(%q)=(%q,%q); want (%q,%q)", tc.line, kw, args, tc.keyword, tc.args)
		}
	}
}

func TestParseArgument(t *testing.T) {
	tcs := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: `"hello world"`, want: "hello world", ok: true},
		{in: `name "hello"  `, want: "hello", ok: true},
		{in: `""`, want: "", ok: true},
		{in: `say "a "b" c"`, want: `a "b" c`, ok: true},
		{in: `no quotes`, ok: false},
		{in: `"open`, ok: false},
		{in: `"`, ok: false},
		{in: ``, ok: false},
	}

	for _, tc := range tcs {
		got, err := ParseArgument(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseArgument(%q)=%q,%v; want %q,nil", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrMalformedArgument) {
			t.Fatalf("ParseArgument(%q) err=%v; want ErrMalformedArgument", tc.in, err)
		}
	}
}

func TestSplitArguments(t *testing.T) {
	words, err := SplitArguments(`a 'b c' "d\"e" f\ g`)
	if err != nil {
		t.Fatalf("SplitArguments: %v", err)
	}
	want := []string{"a", "b c", `d"e`, "f g"}
	if len(words) != len(want) {
		t.Fatalf("SplitArguments words=%q; want %q", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("words[%d]=%q; want %q", i, words[i], want[i])
		}
	}

	if _, err := SplitArguments(`"unterminated`); !errors.Is(err, ErrMalformedArgument) {
		t.Fatalf("SplitArguments(unterminated) err=%v; want ErrMalformedArgument", err)
	}
}
