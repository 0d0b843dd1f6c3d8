// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads and writes pak archives: a header, the file data and
// a directory of fixed size entries at the end.
package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/tools/godoc/vfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

var (
	ErrNotPack = errors.New("not a pack")
	magic      = [4]byte{'P', 'A', 'C', 'K'}
)

const (
	entrySize  = 64
	headerSize = 12
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

type Pack struct {
	name  string
	files map[string]string
}

func (p *Pack) String() string {
	return p.name
}

// Names returns the sorted names of all files in the pack.
func (p *Pack) Names() []string {
	n := make([]string, 0, len(p.files))
	for k := range p.files {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// FileSystem returns the pack content as a read only file system.
func (p *Pack) FileSystem() vfs.FileSystem {
	return mapfs.New(p.files)
}

// Open reads the whole directory and content of the pak file called name.
func Open(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	p.name = name
	return p, nil
}

func Read(r io.ReadSeeker) (*Pack, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, ErrNotPack
	}
	if h.ID != magic || h.Offset < headerSize || h.Size < 0 || h.Size%entrySize != 0 {
		return nil, ErrNotPack
	}
	if _, err := r.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return nil, err
	}
	filenum := h.Size / entrySize
	entries := make([]entry, filenum)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, errors.Wrap(err, "directory too short")
	}
	p := &Pack{files: make(map[string]string, filenum)}
	for _, e := range entries {
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := string(e.Name[:n])
		if _, ok := p.files[name]; ok {
			return nil, errors.Errorf("files in pack are not unique: %s", name)
		}
		if e.Offset < headerSize || e.Size < 0 {
			return nil, errors.Errorf("bad entry %s", name)
		}
		if _, err := r.Seek(int64(e.Offset), io.SeekStart); err != nil {
			return nil, err
		}
		b := make([]byte, e.Size)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, errors.Wrapf(err, "entry %s", name)
		}
		p.files[name] = string(b)
	}
	return p, nil
}

// Write stores files as pak archive. Names have to fit into 55 bytes.
func Write(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for n := range files {
		if len(n) >= len(entry{}.Name) {
			return errors.Errorf("name too long: %s", n)
		}
		names = append(names, n)
	}
	sort.Strings(names)

	offset := int32(headerSize)
	entries := make([]entry, 0, len(names))
	for _, n := range names {
		e := entry{Offset: offset, Size: int32(len(files[n]))}
		copy(e.Name[:], n)
		entries = append(entries, e)
		offset += e.Size
	}
	h := header{ID: magic, Offset: offset, Size: int32(len(entries) * entrySize)}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := w.Write(files[n]); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, entries)
}
