package course

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestSelect_Found(t *testing.T) {
	r, err := Select(DefaultCourses(), "Data Science")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Progress != 55 {
		t.Errorf("progress = %d, want 55", r.Progress)
	}
}

func TestSelect_CaseSensitive(t *testing.T) {
	_, err := Select(DefaultCourses(), "python")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.Name != "python" {
		t.Errorf("NotFoundError.Name = %q, want %q", nf.Name, "python")
	}
}

func TestSelect_Empty(t *testing.T) {
	_, err := Select(nil, "Python")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestProperty_SelectExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Za-z ]{1,10}`), 1, 12, rapid.ID[string]).Draw(t, "names")
		recs := make([]SkillRecord, len(names))
		for i, n := range names {
			recs[i] = SkillRecord{Name: n, Progress: i}
		}

		i := rapid.IntRange(0, len(names)-1).Draw(t, "index")
		got, err := Select(recs, names[i])
		if err != nil {
			t.Fatalf("select %q: %v", names[i], err)
		}
		if got != recs[i] {
			t.Fatalf("select %q = %+v, want %+v", names[i], got, recs[i])
		}

		// Digits never appear in generated names.
		if _, err := Select(recs, "0"+names[i]); err == nil {
			t.Fatalf("select of absent name succeeded")
		}
	})
}
