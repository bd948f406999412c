package domain

import "testing"

func newTestSession() *GameSessionRecord {
	return NewGameSession("s1", "u1", 1, []string{"q1", "q2"}, 75)
}

func TestRecordAnswer_FirstSubmission(t *testing.T) {
	s := newTestSession()

	if correct := s.RecordAnswer("q1", " 4 ", "4"); !correct {
		t.Error("trimmed answer should be correct")
	}
	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount)
	}
	if s.Answers["q1"] != " 4 " {
		t.Errorf("raw answer not stored: %q", s.Answers["q1"])
	}

	if correct := s.RecordAnswer("q2", "5", "4"); correct {
		t.Error("wrong answer reported correct")
	}
	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1 after incorrect first submission", s.CorrectCount)
	}
}

func TestRecordAnswer_RepeatedIdenticalSubmission(t *testing.T) {
	s := newTestSession()
	s.RecordAnswer("q1", "4", "4")
	s.RecordAnswer("q1", "4", "4")
	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1 after repeated correct submission", s.CorrectCount)
	}
}

func TestRecordAnswer_FlipRoundTrip(t *testing.T) {
	s := newTestSession()
	s.RecordAnswer("q1", "4", "4")
	s.RecordAnswer("q1", "5", "4")
	if s.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0 after correct->incorrect flip", s.CorrectCount)
	}
	s.RecordAnswer("q1", "4", "4")
	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1 after flipping back", s.CorrectCount)
	}
}

func TestRecordAnswer_CaseInsensitive(t *testing.T) {
	s := newTestSession()
	if correct := s.RecordAnswer("q1", "  SEVEN ", "seven"); !correct {
		t.Error("comparison should trim and lower-case both sides")
	}
}

func TestHasQuestion(t *testing.T) {
	s := newTestSession()
	if !s.HasQuestion("q2") {
		t.Error("q2 should be in session")
	}
	if s.HasQuestion("q9") {
		t.Error("q9 should not be in session")
	}
}
