// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"soundstage/cbuf"
	"soundstage/filesystem"
)

func TestCommands(t *testing.T) {
	c := New()
	calls := 0
	if err := c.Add("Play", func(_ *cbuf.CommandBuffer, _ cbuf.Arguments) error {
		calls++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("play", nil); err == nil {
		t.Errorf("adding play twice succeeded")
	}
	if !c.Exists("PLAY") {
		t.Errorf("Exists(PLAY) = false")
	}
	ok, err := c.Execute(nil, cbuf.Parse("play circle"))
	if !ok || err != nil {
		t.Errorf("Execute(play) = %v, %v", ok, err)
	}
	ok, _ = c.Execute(nil, cbuf.Parse("stop"))
	if ok {
		t.Errorf("Execute(stop) handled an unknown command")
	}
	if calls != 1 {
		t.Errorf("calls = %v, want 1", calls)
	}
}

func TestExec(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test.cfg"), []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	filesystem.UseDirs(dir)
	t.Cleanup(func() { filesystem.UseDirs() })

	var got []string
	cb := cbuf.CommandBuffer{}
	cb.SetCommandExecutors([]cbuf.Efunc{
		Execute,
		func(_ *cbuf.CommandBuffer, a cbuf.Arguments) (bool, error) {
			got = append(got, a.Full())
			return true, nil
		}})
	cb.AddText("exec test.cfg\nthird\nexec missing.cfg\n")
	if err := cb.ExecuteAll(); err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("executed %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
