// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `say hello world`,
			wantF:  `say hello world`,
			wantAS: `hello world`,
			wantA:  []QArg{{"say"}, {"hello"}, {"world"}},
		},
		{
			in:     `say "hello world"`,
			wantF:  `say "hello world"`,
			wantAS: `hello world`,
			wantA:  []QArg{{"say"}, {"hello world"}},
		},
		{
			in:     ` sample  foo bar baz `,
			wantF:  `sample  foo bar baz`,
			wantAS: `foo bar baz`,
			wantA:  []QArg{{"sample"}, {"foo"}, {"bar"}, {"baz"}},
		},
		{
			in:     `volume 0.5 // quieter`,
			wantF:  `volume 0.5 // quieter`,
			wantAS: `0.5 // quieter`,
			wantA:  []QArg{{"volume"}, {"0.5"}},
		},
		{
			in:     `sample "open end`,
			wantF:  `sample "open end`,
			wantAS: `open end`,
			wantA:  []QArg{{"sample"}, {"open end"}},
		},
		{
			in:    `// nothing`,
			wantF: `// nothing`,
			wantA: []QArg{},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestParseControlCharacters(t *testing.T) {
	for _, tc := range []struct {
		in    string
		wantA []QArg
	}{
		{"a\fb", []QArg{{"a"}, {"b"}}},
		{"x\x01y", []QArg{{"x"}, {"y"}}},
		{"demo_volume\f0.5", []QArg{{"demo_volume"}, {"0.5"}}},
		{"echo a\vb", []QArg{{"echo"}, {"a"}, {"b"}}},
		{"\x01\x02", []QArg{}},
	} {
		done := make(chan Arguments, 1)
		go func() { done <- Parse(tc.in) }()
		var arg Arguments
		select {
		case arg = <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("Parse(%q) did not return", tc.in)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() = %q, want %q", tc.in, as, tc.wantA)
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Parse(%q) Arg[%d]=%q, want %q", tc.in, i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	if got := (QArg{"42"}).Int(); got != 42 {
		t.Errorf("Int() = %v, want 42", got)
	}
	if got := (QArg{"x"}).Int(); got != 0 {
		t.Errorf("Int() = %v, want 0", got)
	}
	if got := (QArg{"0.25"}).Float32(); got != 0.25 {
		t.Errorf("Float32() = %v, want 0.25", got)
	}
	for _, s := range []string{"1", "true", "On"} {
		if !(QArg{s}).Bool() {
			t.Errorf("QArg{%q}.Bool() = false", s)
		}
	}
	if (QArg{"0"}).Bool() {
		t.Errorf("QArg{\"0\"}.Bool() = true")
	}
}
