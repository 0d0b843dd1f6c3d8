// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem resolves sound and config file names against the
// search path.
package filesystem

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/tools/godoc/vfs"

	"soundstage/pack"
)

var (
	dirs  []string
	ns    = defaultNameSpace()
	mutex sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
}

func defaultNameSpace() vfs.NameSpace {
	n := vfs.NewNameSpace()
	n.Bind("/", vfs.OS("."), "/", vfs.BindReplace)
	return n
}

// packs returns the pak archives of dir, the highest numbered first.
func packs(dir string) []vfs.FileSystem {
	names, _ := filepath.Glob(filepath.Join(dir, "*.pak"))
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	var r []vfs.FileSystem
	for _, n := range names {
		p, err := pack.Open(n)
		if err != nil {
			log.Printf("Skipping %s: %v", n, err)
			continue
		}
		log.Printf("Added packfile %s (%d files)", n, len(p.Names()))
		r = append(r, p.FileSystem())
	}
	return r
}

// UseDirs sets the search path. Earlier directories take priority, the
// working directory is always searched last. Inside a directory the pak
// archives are searched before the loose files.
func UseDirs(d ...string) {
	mutex.Lock()
	defer mutex.Unlock()
	dirs = dirs[:0]
	for _, p := range d {
		if p != "" && p != "." {
			dirs = append(dirs, p)
		}
	}
	dirs = append(dirs, ".")

	var fss []vfs.FileSystem
	for _, dir := range dirs {
		fss = append(fss, packs(dir)...)
		fss = append(fss, vfs.OS(dir))
	}
	ns = vfs.NewNameSpace()
	ns.Bind("/", fss[len(fss)-1], "/", vfs.BindReplace)
	for i := len(fss) - 2; i >= 0; i-- {
		ns.Bind("/", fss[i], "/", vfs.BindBefore)
	}
}

// Dirs returns the search path in lookup order.
func Dirs() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	if len(dirs) == 0 {
		return []string{"."}
	}
	return append([]string(nil), dirs...)
}

func Stat(path string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	return ns.Stat(filepath.ToSlash(filepath.Join("/", path)))
}

// Open returns the first file called name found in the search path.
// Absolute names are opened directly.
func Open(name string) (File, error) {
	if filepath.IsAbs(name) {
		return os.Open(name)
	}
	mutex.RLock()
	defer mutex.RUnlock()
	f, err := ns.Open(filepath.ToSlash(filepath.Join("/", name)))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
