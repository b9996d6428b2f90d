package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	want := []fixture{{Name: "a", Count: 1}, {Name: "b", Count: 2}}

	err = store.Save("test-storage", want)
	if err != nil {
		t.Fatal(err)
	}

	var got []fixture
	err = store.Load("test-storage", &got)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingNamespaceLeavesValueUntouched(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	got := []fixture{{Name: "existing"}}
	err = store.Load("never-saved", &got)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].Name != "existing" {
		t.Errorf("value was modified on missing namespace: %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save("ns", fixture{Name: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("ns", fixture{Name: "new"}); err != nil {
		t.Fatal(err)
	}

	var got fixture
	if err := store.Load("ns", &got); err != nil {
		t.Fatal(err)
	}

	if got.Name != "new" {
		t.Errorf("Name = %q, want %q", got.Name, "new")
	}
}

func TestNamespacesAreIndependentFiles(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save("auth-storage", fixture{Name: "auth"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("history-storage", fixture{Name: "history"}); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"auth-storage.json", "history-storage.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestLoadCorruptNamespaceFails(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	var got fixture
	if err := store.Load("bad", &got); err == nil {
		t.Error("expected an error for corrupt data")
	}
}
