// Package store is the flat-directory repository backing all reminder
// operations. Each reminder is one UTF-8 text file named <base>.rem; the file
// content is the reminder text, nothing else.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mkells/remindwindows/internal/core/slug"
)

// Store provides list/read/write/delete operations against one reminder
// directory.
type Store struct {
	dir     string
	maxBase int
}

// Entry describes one reminder file for listing purposes.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Open returns a Store rooted at dir, creating the directory if needed.
// A non-directory already occupying the path is an error.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("reserved directory %s exists as a file", dir)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create reminder directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat reminder directory: %w", err)
	}

	return &Store{dir: dir, maxBase: slug.DefaultMaxBase}, nil
}

// SetMaxBase overrides the maximum derived basename length.
func (s *Store) SetMaxBase(n int) {
	if n > 0 {
		s.maxBase = n
	}
}

// Dir returns the reminder directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute path of a reminder filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether a reminder file with this name is on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// List returns all reminder filenames, sorted alphabetically. The order is
// the one index references resolve against.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read reminder directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), slug.Extension) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListEntries returns listing metadata for every reminder file, in List order.
func (s *Store) ListEntries() ([]Entry, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		info, err := os.Stat(s.Path(name))
		if err != nil {
			// Deleted between ReadDir and Stat; skip it.
			continue
		}
		entries = append(entries, Entry{Name: name, Size: info.Size(), ModTime: info.ModTime()})
	}
	return entries, nil
}

// Read returns the raw text of a reminder.
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s is not a reminder file: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read reminder %s: %w", name, err)
	}
	return string(data), nil
}

// Write stores reminder text under the given filename.
func (s *Store) Write(name, text string) error {
	if err := os.WriteFile(s.Path(name), []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write reminder %s: %w", name, err)
	}
	return nil
}

// Delete removes a reminder file.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s is not a reminder file: %w", name, ErrNotFound)
		}
		return fmt.Errorf("failed to delete reminder %s: %w", name, err)
	}
	return nil
}

// Add derives an unused filename for text, writes the reminder, and returns
// the chosen filename.
func (s *Store) Add(text string) (string, error) {
	names, err := s.List()
	if err != nil {
		return "", err
	}
	existing := make(map[string]struct{}, len(names))
	for _, n := range names {
		existing[n] = struct{}{}
	}

	name, err := slug.Derive(text, existing, s.maxBase)
	if err != nil {
		return "", err
	}
	if err := s.Write(name, text); err != nil {
		return "", err
	}
	return name, nil
}

// AddNamed writes a reminder under an explicitly chosen name.
func (s *Store) AddNamed(name, text string) error {
	if s.Exists(name) {
		return fmt.Errorf("%s is already a reminder file: %w", name, ErrAlreadyExists)
	}
	return s.Write(name, text)
}

// Resolve turns a user-supplied reference into a reminder filename. A
// reference is an all-digit zero-based index into List, a literal filename
// ending in .rem, or a basename the extension is appended to. Existence of
// the resolved file is not checked except for index references.
func (s *Store) Resolve(ref string) (string, error) {
	if err := validateRef(ref); err != nil {
		return "", err
	}

	if strings.HasSuffix(ref, slug.Extension) {
		return ref, nil
	}

	if isDigits(ref) {
		names, err := s.List()
		if err != nil {
			return "", err
		}
		idx, err := strconv.Atoi(ref)
		if err != nil || idx >= len(names) {
			return "", fmt.Errorf("List index out of range: %w", ErrIndexOutOfRange)
		}
		return names[idx], nil
	}

	return ref + slug.Extension, nil
}

// ResolveExisting resolves a reference and requires the reminder to exist.
func (s *Store) ResolveExisting(ref string) (string, error) {
	name, err := s.Resolve(ref)
	if err != nil {
		return "", err
	}
	if !s.Exists(name) {
		return "", fmt.Errorf("%s is not a reminder file: %w", name, ErrNotFound)
	}
	return name, nil
}

// ResolveNew resolves a reference for use as a fresh explicit name: it must
// not be all digits (reserved for index references) and must not exist yet.
func (s *Store) ResolveNew(ref string) (string, error) {
	if isDigits(ref) {
		return "", fmt.Errorf("cannot name reminder only digits: %w", ErrInvalidFilename)
	}
	name, err := s.Resolve(ref)
	if err != nil {
		return "", err
	}
	if s.Exists(name) {
		return "", fmt.Errorf("%s is already a reminder file: %w", name, ErrAlreadyExists)
	}
	return name, nil
}

func validateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("filename cannot be empty: %w", ErrInvalidFilename)
	}
	for _, c := range []string{"/", `\`, "*"} {
		if strings.Contains(ref, c) {
			return fmt.Errorf("filename cannot contain character %q: %w", c, ErrInvalidFilename)
		}
	}
	for _, c := range []string{"-", "+", "."} {
		if strings.HasPrefix(ref, c) {
			return fmt.Errorf("filename cannot begin with character %q: %w", c, ErrInvalidFilename)
		}
	}
	for _, r := range ref {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("filename must be printable: %w", ErrInvalidFilename)
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
