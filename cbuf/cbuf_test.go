// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"errors"
	"testing"
)

func TestWait(t *testing.T) {
	c := CommandBuffer{}
	runCount := 0
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			runCount++
			return true, nil
		}})
	c.AddText("wait\n")
	c.AddText("test\n")
	c.AddText("test\n")
	c.AddText("wait\n")
	c.AddText("test\n")
	c.Execute()
	if runCount != 0 {
		t.Errorf("runCount=%v, want %v", runCount, 0)
	}
	c.Execute()
	if runCount != 2 {
		t.Errorf("runCount=%v, want %v", runCount, 2)
	}
	c.Execute()
	if runCount != 3 {
		t.Errorf("runCount=%v, want %v", runCount, 3)
	}
}

func TestSeparators(t *testing.T) {
	c := CommandBuffer{}
	var got []string
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			got = append(got, a.Full())
			return true, nil
		}})
	c.AddText("volume 0.5; sample \"a;b.wav\"\n\n// only a comment\nsnd_rate 48000")
	if err := c.ExecuteAll(); err != nil {
		t.Fatal(err)
	}
	want := []string{"volume 0.5", `sample "a;b.wav"`, "snd_rate 48000"}
	if len(got) != len(want) {
		t.Fatalf("executed %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !c.Empty() {
		t.Errorf("buffer not empty")
	}
}

func TestExecutorOrder(t *testing.T) {
	c := CommandBuffer{}
	var first, second int
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			first++
			return a.Argv(0).String() == "one", nil
		},
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			second++
			return true, nil
		}})
	c.AddText("one\ntwo\n")
	c.ExecuteAll()
	if first != 2 || second != 1 {
		t.Errorf("first=%v second=%v, want 2 and 1", first, second)
	}
}

func TestExecuteError(t *testing.T) {
	c := CommandBuffer{}
	errFail := errors.New("fail")
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			return false, errFail
		}})
	c.AddText("a\nb\n")
	if err := c.Execute(); err != errFail {
		t.Errorf("Execute() = %v, want %v", err, errFail)
	}
	if c.Empty() {
		t.Errorf("buffer should keep the remaining commands")
	}
}

func TestInsertText(t *testing.T) {
	c := CommandBuffer{}
	var got []string
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a Arguments) (bool, error) {
			got = append(got, a.Full())
			if a.Full() == "exec" {
				cb.InsertText("inner")
			}
			return true, nil
		}})
	c.AddText("exec\nouter\n")
	c.ExecuteAll()
	want := []string{"exec", "inner", "outer"}
	if len(got) != len(want) {
		t.Fatalf("executed %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
