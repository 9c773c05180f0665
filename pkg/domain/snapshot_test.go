package domain

import (
	"reflect"
	"testing"
)

func TestSnapshotInsertionOrder(t *testing.T) {
	s := NewSnapshot()
	s.Set("PORT", "3000")
	s.Set("HOST", "localhost")
	s.Set("DEBUG", "true")

	want := []string{"PORT", "HOST", "DEBUG"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestSnapshotOverwriteKeepsPosition(t *testing.T) {
	s := NewSnapshot()
	s.Set("A", "1")
	s.Set("B", "2")
	s.Set("A", "override")

	if got := s.Keys(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Keys() = %v, want [A B]", got)
	}
	if v, _ := s.Get("A"); v != "override" {
		t.Errorf("Get(A) = %q, want %q", v, "override")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSnapshotMerge(t *testing.T) {
	file := NewSnapshot()
	file.Set("PORT", "3000")
	file.Set("API_KEY", "from-file")

	live := NewSnapshot()
	live.Set("API_KEY", "from-process")
	live.Set("HOME", "/root")

	file.Merge(live)

	if got := file.Keys(); !reflect.DeepEqual(got, []string{"PORT", "API_KEY", "HOME"}) {
		t.Errorf("merged Keys() = %v", got)
	}
	if v, _ := file.Get("API_KEY"); v != "from-process" {
		t.Errorf("live value should win, got %q", v)
	}
}

func TestSnapshotMergeNil(t *testing.T) {
	s := NewSnapshot()
	s.Set("A", "1")
	s.Merge(nil)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSnapshotFromMapSorted(t *testing.T) {
	s := SnapshotFromMap(map[string]string{"ZED": "1", "ALPHA": "2", "MID": "3"})
	if got := s.Keys(); !reflect.DeepEqual(got, []string{"ALPHA", "MID", "ZED"}) {
		t.Errorf("Keys() = %v, want sorted names", got)
	}
}

func TestSnapshotKeysIsCopy(t *testing.T) {
	s := NewSnapshot()
	s.Set("A", "1")
	keys := s.Keys()
	keys[0] = "mutated"
	if got := s.Keys(); got[0] != "A" {
		t.Errorf("Keys() leaked internal slice: %v", got)
	}
}

func TestSnapshotEmptyValueIsPresent(t *testing.T) {
	s := NewSnapshot()
	s.Set("EMPTY", "")
	if !s.Has("EMPTY") {
		t.Error("Has(EMPTY) = false, want true for empty value")
	}
	v, ok := s.Get("EMPTY")
	if !ok || v != "" {
		t.Errorf("Get(EMPTY) = (%q, %v), want (\"\", true)", v, ok)
	}
}
