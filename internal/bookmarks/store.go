// Package bookmarks holds the questions a student saved for revision.
// Each bookmark is a deep copy taken at save time, so later changes to
// the session never alter it.
package bookmarks

import "github.com/notqc/helpmate/internal/quizgen"

// Snapshot is one bookmarked question with its quiz context.
type Snapshot struct {
	Question      quizgen.Question
	Topic         string
	QuestionIndex int
}

// Store is an in-memory bookmark list. Entries append in save order;
// duplicates are allowed.
type Store struct {
	items []Snapshot
}

// NewStore creates an empty bookmark store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a deep copy of snap.
func (s *Store) Add(snap Snapshot) {
	s.items = append(s.items, copySnapshot(snap))
}

// Remove deletes every bookmark matching the question text and topic
// pair and returns how many were removed.
func (s *Store) Remove(questionText, topic string) int {
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if item.Question.Text == questionText && item.Topic == topic {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed
}

// All returns a copy of the bookmark list in save order.
func (s *Store) All() []Snapshot {
	out := make([]Snapshot, len(s.items))
	for i, item := range s.items {
		out[i] = copySnapshot(item)
	}
	return out
}

// Len returns the number of bookmarks.
func (s *Store) Len() int {
	return len(s.items)
}

func copySnapshot(snap Snapshot) Snapshot {
	out := snap
	out.Question.Choices = append([]string(nil), snap.Question.Choices...)
	return out
}
