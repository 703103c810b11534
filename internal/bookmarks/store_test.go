package bookmarks

import (
	"testing"

	"github.com/notqc/helpmate/internal/quizgen"
)

func snap(text, topic string) Snapshot {
	return Snapshot{
		Question: quizgen.Question{
			Text:         text,
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: 2,
			Explanation:  quizgen.Explanation{Steps: "steps"},
		},
		Topic:         topic,
		QuestionIndex: 0,
	}
}

func TestAddAndLen(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q2", "Optics"))
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q1", "Optics"))
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2 (duplicates allowed)", s.Len())
	}
}

func TestRemoveMatchesTextAndTopic(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q1", "Calculus")) // same text, different topic
	s.Add(snap("q2", "Optics"))

	removed := s.Remove("q1", "Optics")
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	for _, item := range s.All() {
		if item.Question.Text == "q1" && item.Topic == "Optics" {
			t.Fatal("removed bookmark still present")
		}
	}
}

func TestRemoveDeletesAllMatches(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q2", "Optics"))

	removed := s.Remove("q1", "Optics")
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestRemoveNoMatch(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	if removed := s.Remove("q9", "Optics"); removed != 0 {
		t.Fatalf("removed = %d, want 0", removed)
	}
}

func TestSnapshotsAreDeepCopies(t *testing.T) {
	s := NewStore()
	original := snap("q1", "Optics")
	s.Add(original)

	// Mutating the caller's copy after Add must not affect the store.
	original.Question.Choices[0] = "mutated"

	stored := s.All()[0]
	if stored.Question.Choices[0] != "a" {
		t.Error("store shares choices slice with the caller")
	}

	// Mutating the returned copy must not affect the store either.
	stored.Question.Choices[1] = "mutated"
	if s.All()[0].Question.Choices[1] != "b" {
		t.Error("All returns aliased choices slices")
	}
}

func TestAllPreservesOrder(t *testing.T) {
	s := NewStore()
	s.Add(snap("q1", "Optics"))
	s.Add(snap("q2", "Calculus"))
	s.Add(snap("q3", "Vectors"))

	all := s.All()
	for i, want := range []string{"q1", "q2", "q3"} {
		if all[i].Question.Text != want {
			t.Errorf("all[%d] = %q, want %q", i, all[i].Question.Text, want)
		}
	}
}
