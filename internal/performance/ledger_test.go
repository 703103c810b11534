package performance

import "testing"

func TestRecordAndStats(t *testing.T) {
	l := NewLedger()
	l.Record("Optics", true)
	l.Record("Optics", false)
	l.Record("Calculus", true)

	total, correct := l.Stats("Optics")
	if total != 2 || correct != 1 {
		t.Errorf("Optics = (%d, %d), want (2, 1)", total, correct)
	}

	total, correct = l.Stats("Calculus")
	if total != 1 || correct != 1 {
		t.Errorf("Calculus = (%d, %d), want (1, 1)", total, correct)
	}
}

func TestStats_UnseenTopic(t *testing.T) {
	l := NewLedger()
	total, correct := l.Stats("Thermodynamics")
	if total != 0 || correct != 0 {
		t.Errorf("unseen topic = (%d, %d), want (0, 0)", total, correct)
	}
}

func TestAccuracy(t *testing.T) {
	l := NewLedger()
	l.Record("Optics", true)
	l.Record("Optics", false)

	acc, ok := l.Accuracy("Optics")
	if !ok {
		t.Fatal("expected accuracy to be determinable")
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}
}

func TestAccuracy_NotDeterminable(t *testing.T) {
	l := NewLedger()
	if _, ok := l.Accuracy("Optics"); ok {
		t.Fatal("expected ok=false for unseen topic")
	}
}

func TestTopicsSorted(t *testing.T) {
	l := NewLedger()
	l.Record("Vectors", true)
	l.Record("Calculus", false)
	l.Record("Optics", true)

	got := l.Topics()
	want := []string{"Calculus", "Optics", "Vectors"}
	if len(got) != len(want) {
		t.Fatalf("topics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topics = %v, want %v", got, want)
		}
	}
}

func TestTopicsAreCaseSensitive(t *testing.T) {
	l := NewLedger()
	l.Record("optics", true)
	l.Record("Optics", false)

	if len(l.Topics()) != 2 {
		t.Errorf("expected distinct entries for differently-cased topics, got %v", l.Topics())
	}
}
