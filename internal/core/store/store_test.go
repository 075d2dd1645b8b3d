package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "reminders"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return st
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reminders")

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	info, err := os.Stat(st.Dir())
	if err != nil || !info.IsDir() {
		t.Fatalf("Open() did not create directory: %v", err)
	}
}

func TestOpen_PathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open() should fail when the path exists as a file")
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	st := testStore(t)

	text := "pick up the dry cleaning\nbefore 6pm"
	name, err := st.Add(text)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := st.Read(name)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != text {
		t.Errorf("Read() = %q, want %q", got, text)
	}
}

func TestAdd_SameTextThreeTimes(t *testing.T) {
	st := testStore(t)

	var names []string
	for i := 0; i < 3; i++ {
		name, err := st.Add("water the plants")
		if err != nil {
			t.Fatalf("Add() #%d error = %v", i, err)
		}
		names = append(names, name)
	}

	want := []string{"watertheplants"[:10] + ".rem", "waterth000.rem", "waterth001.rem"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Add() names = %v, want %v", names, want)
	}
}

func TestList_SortedAndStable(t *testing.T) {
	st := testStore(t)

	for _, text := range []string{"zebra", "apple", "mango"} {
		if _, err := st.Add(text); err != nil {
			t.Fatal(err)
		}
	}

	first, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"apple.rem", "mango.rem", "zebra.rem"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("List() = %v, want %v", first, want)
	}

	second, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("List() unstable: %v then %v", first, second)
	}
}

func TestList_IgnoresForeignFiles(t *testing.T) {
	st := testStore(t)

	if _, err := st.Add("real one"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(st.Dir(), ".realone.rem.swp"), []byte("swap"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(st.Dir(), "notes.txt"), []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 1 || names[0] != "realone.rem" {
		t.Errorf("List() = %v, want [realone.rem]", names)
	}
}

func TestResolve(t *testing.T) {
	st := testStore(t)
	for _, text := range []string{"apple", "mango"} {
		if _, err := st.Add(text); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"0", "apple.rem"},
		{"1", "mango.rem"},
		{"mango", "mango.rem"},
		{"mango.rem", "mango.rem"},
		{"unwritten", "unwritten.rem"},
	}

	for _, tt := range tests {
		got, err := st.Resolve(tt.ref)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestResolve_Invalid(t *testing.T) {
	st := testStore(t)

	tests := []struct {
		ref     string
		wantErr error
	}{
		{"", ErrInvalidFilename},
		{"a/b", ErrInvalidFilename},
		{`a\b`, ErrInvalidFilename},
		{"a*b", ErrInvalidFilename},
		{"-flag", ErrInvalidFilename},
		{"+plus", ErrInvalidFilename},
		{".hidden", ErrInvalidFilename},
		{"bad\x01name", ErrInvalidFilename},
		{"5", ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		_, err := st.Resolve(tt.ref)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Resolve(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
		}
	}
}

func TestResolve_IndexOutOfRangeMessage(t *testing.T) {
	st := testStore(t)

	_, err := st.Resolve("3")
	if err == nil || !strings.Contains(err.Error(), "List index out of range") {
		t.Errorf("Resolve(\"3\") error = %v, want message containing %q", err, "List index out of range")
	}
}

func TestResolveExisting_NotFound(t *testing.T) {
	st := testStore(t)

	_, err := st.ResolveExisting("ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolveExisting() error = %v, want ErrNotFound", err)
	}
}

func TestResolveNew(t *testing.T) {
	st := testStore(t)
	if err := st.AddNamed("taken.rem", "already here"); err != nil {
		t.Fatal(err)
	}

	if _, err := st.ResolveNew("42"); !errors.Is(err, ErrInvalidFilename) {
		t.Errorf("ResolveNew(\"42\") error = %v, want ErrInvalidFilename", err)
	}
	if _, err := st.ResolveNew("taken"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("ResolveNew(\"taken\") error = %v, want ErrAlreadyExists", err)
	}

	name, err := st.ResolveNew("fresh")
	if err != nil {
		t.Fatalf("ResolveNew(\"fresh\") error = %v", err)
	}
	if name != "fresh.rem" {
		t.Errorf("ResolveNew(\"fresh\") = %q, want %q", name, "fresh.rem")
	}
}

func TestAddNamed_Collision(t *testing.T) {
	st := testStore(t)

	if err := st.AddNamed("dup.rem", "one"); err != nil {
		t.Fatal(err)
	}
	if err := st.AddNamed("dup.rem", "two"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("AddNamed() error = %v, want ErrAlreadyExists", err)
	}
}

func TestDelete_ByIndex(t *testing.T) {
	st := testStore(t)
	for _, text := range []string{"apple", "mango"} {
		if _, err := st.Add(text); err != nil {
			t.Fatal(err)
		}
	}

	name, err := st.ResolveExisting("0")
	if err != nil {
		t.Fatalf("ResolveExisting(\"0\") error = %v", err)
	}
	if err := st.Delete(name); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	names, err := st.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 1 || names[0] != "mango.rem" {
		t.Errorf("List() after delete = %v, want [mango.rem]", names)
	}
}

func TestDelete_Missing(t *testing.T) {
	st := testStore(t)

	if err := st.Delete("ghost.rem"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestListEntries(t *testing.T) {
	st := testStore(t)
	if _, err := st.Add("only one"); err != nil {
		t.Fatal(err)
	}

	entries, err := st.ListEntries()
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ListEntries() returned %d entries, want 1", len(entries))
	}
	if entries[0].Name != "onlyone.rem" {
		t.Errorf("entry name = %q, want %q", entries[0].Name, "onlyone.rem")
	}
	if entries[0].Size != int64(len("only one")) {
		t.Errorf("entry size = %d, want %d", entries[0].Size, len("only one"))
	}
	if entries[0].ModTime.IsZero() {
		t.Error("entry mod time is zero")
	}
}
