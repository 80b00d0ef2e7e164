package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordOrder(t *testing.T) {
	var r Record
	r.Set(KeyFullName, "Ada Lovelace")
	r.Set(KeyEmail, "ada@example.com")
	r.Set(KeyPhone, "5551234567")
	r.Set(KeyEmail, "ada@analytical.engine")

	want := []string{KeyFullName, KeyEmail, KeyPhone}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if v, _ := r.Get(KeyEmail); v != "ada@analytical.engine" {
		t.Errorf("Get(email) = %q, want overwritten value", v)
	}
	if r.Has(KeyLocation) {
		t.Error("Has(location) = true for a key never set")
	}
}

func TestPhaseNames(t *testing.T) {
	for _, p := range AllPhases() {
		parsed, err := ParsePhase(p.String())
		if err != nil {
			t.Fatalf("ParsePhase(%q) error = %v", p.String(), err)
		}
		if parsed != p {
			t.Errorf("ParsePhase(%q) = %v, want %v", p.String(), parsed, p)
		}
	}

	if _, err := ParsePhase("interview"); err == nil {
		t.Error("ParsePhase() should reject unknown names")
	}
}

func TestSnapshotJSON(t *testing.T) {
	snap := Snapshot{SessionID: "abc", Phase: PhaseTechStackExpansion, InfoIndex: 6, InfoTotal: 6}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["phase"] != "tech_stack_expansion" {
		t.Errorf("phase = %v, want tech_stack_expansion", decoded["phase"])
	}
}

func TestCurrentQuestion(t *testing.T) {
	s := &Session{Phase: PhaseScreening, Questions: []string{"Q1", "Q2"}, QuestionIndex: 1}
	if q, ok := s.CurrentQuestion(); !ok || q != "Q2" {
		t.Errorf("CurrentQuestion() = %q, %v; want Q2, true", q, ok)
	}

	s.QuestionIndex = 2
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("CurrentQuestion() ok after the last question")
	}
}
