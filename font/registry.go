package font

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/sdftext/internal/logging"
)

// Entry is a registered font file.
type Entry struct {
	// Key is the case-folded, trimmed name used for matching.
	Key string
	// Name is the name as registered.
	Name string
	// Path is the font file location.
	Path string
}

// Registry maps font names to font files.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// foldKey normalizes a font name for matching.
func foldKey(name string) string {
	return strings.TrimSpace(cases.Fold().String(name))
}

// Add registers a font file under name. A name already present is
// replaced.
func (r *Registry) Add(name, path string) {
	e := Entry{Key: foldKey(name), Name: name, Path: path}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Key == e.Key {
			r.entries[i] = e
			return
		}
	}
	r.entries = append(r.entries, e)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Lookup resolves name to a registered font.
//
// An exact match of the folded name wins. Otherwise every entry is scored
// against the whitespace-separated tokens of name: each token found inside
// the entry key contributes its length in bytes to the hit count, and
//
//	score = 0.25 (when both have the same token count)
//	      + 0.75 * min(hits / (len(key) - separators), 1)
//
// The first entry with the highest positive score wins. When no token
// matches any entry, Lookup returns ErrNotFound.
func (r *Registry) Lookup(name string) (Entry, error) {
	key := foldKey(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Key == key {
			return e, nil
		}
	}

	tokens := strings.Fields(key)
	var (
		best      Entry
		bestScore float64
	)
	for _, e := range r.entries {
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(e.Key, tok) {
				hits += len(tok)
			}
		}
		if hits == 0 {
			continue
		}

		keyTokens := strings.Fields(e.Key)
		score := 0.0
		if len(keyTokens) == len(tokens) {
			score = 0.25
		}
		letters := len(e.Key) - (len(keyTokens) - 1)
		if letters > 0 {
			score += 0.75 * min(float64(hits)/float64(letters), 1)
		}
		if score > bestScore {
			bestScore = score
			best = e
		}
	}

	if bestScore == 0 {
		return Entry{}, fmt.Errorf("%w: no font matches %q", ErrNotFound, name)
	}
	return best, nil
}

// Open resolves name and loads the font file at size points.
func (r *Registry) Open(name string, size float64) (*Font, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	face, err := LoadFile(e.Path)
	if err != nil {
		return nil, err
	}
	return New(face, size, WithName(e.Name))
}

// ScanDir walks dir and registers every .ttf and .otf file under its full
// name. Files that fail to parse are skipped. It returns the number of
// fonts added.
func (r *Registry) ScanDir(dir string) (int, error) {
	added := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
		default:
			return nil
		}

		face, err := LoadFile(path)
		if err != nil {
			logging.Logger().Debug("font: skipping unreadable font", "path", path, "err", err)
			return nil
		}
		name := face.FullName()
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		r.Add(name, path)
		added++
		return nil
	})
	if err != nil {
		return added, fmt.Errorf("font: scan %s: %w", dir, err)
	}
	return added, nil
}
