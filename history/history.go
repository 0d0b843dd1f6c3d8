// SPDX-License-Identifier: GPL-2.0-or-later

// Package history keeps the console lines entered between scenarios
// across runs.
package history

import (
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// add a max size to prevent the file from growing indefinitely
	maxHistory = 32
)

type History struct {
	mu  sync.Mutex
	txt []string
}

// Add appends s unless it repeats the last entry.
func (h *History) Add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.txt); n > 0 && h.txt[n-1] == s {
		return
	}
	h.txt = append(h.txt, s)
}

func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.txt)
}

// Load reads a history file. A missing file is an empty history.
func (h *History) Load(name string) error {
	in, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		// no history yet
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read history")
	}
	data := &structpb.ListValue{}
	if err := proto.Unmarshal(in, data); err != nil {
		return errors.Wrap(err, "failed to decode history")
	}
	txt := make([]string, 0, len(data.GetValues()))
	for _, v := range data.GetValues() {
		if s, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			txt = append(txt, s.StringValue)
		}
	}
	h.mu.Lock()
	h.txt = txt
	h.mu.Unlock()
	return nil
}

// Save writes the newest entries.
func (h *History) Save(name string) error {
	txt := h.Entries()
	txt = txt[max(0, len(txt)-maxHistory):]
	data := &structpb.ListValue{}
	for _, s := range txt {
		data.Values = append(data.Values, structpb.NewStringValue(s))
	}
	out, err := proto.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode history")
	}
	if err := os.WriteFile(name, out, 0660); err != nil {
		return errors.Wrap(err, "failed to write history file")
	}
	return nil
}
