package lattice

import "testing"

func TestJSONRoundTrip(t *testing.T) {
	b := New(5, 1, 1)
	if err := b.AddSeq("acgua"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	b.Params.Temp = 2.5

	data, err := b.ToJSON(MarshalOptions{IncludeFold: true, IncludeEnergy: true, IncludeSequence: true})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	b2, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if b2.Len() != b.Len() {
		t.Fatalf("round-tripped Len() = %d, want %d", b2.Len(), b.Len())
	}
	if b2.Params.Temp != 2.5 {
		t.Errorf("round-tripped Temp = %v, want 2.5", b2.Params.Temp)
	}
	if b2.Sequence() != b.Sequence() {
		t.Errorf("round-tripped Sequence() = %q, want %q", b2.Sequence(), b.Sequence())
	}
	if err := b2.AssertValid(); err != nil {
		t.Fatalf("round-tripped AssertValid: %v", err)
	}
	if err := b2.AssertLinear(); err != nil {
		t.Fatalf("round-tripped AssertLinear: %v", err)
	}
}

func TestToJSONRefusesInvalidBoard(t *testing.T) {
	b := New(2, 1, 1)
	if err := b.AddSeq("ac"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	// Corrupt the arena directly: break a reciprocal link.
	b.unit[0].Next = -1

	if _, err := b.ToJSON(MarshalOptions{}); err == nil {
		t.Fatal("ToJSON on corrupted board: want error, got nil")
	}
}

func TestJSONOmitsDerivedFieldsByDefault(t *testing.T) {
	b := New(3, 1, 1)
	if err := b.AddSeq("acg"); err != nil {
		t.Fatalf("AddSeq: %v", err)
	}
	data, err := b.ToJSON(MarshalOptions{})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	for _, field := range []string{`"fold"`, `"energy"`, `"sequence"`} {
		if contains(string(data), field) {
			t.Errorf("ToJSON output unexpectedly contains %s: %s", field, data)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
