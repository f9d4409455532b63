package device

import (
	"errors"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		accel string
		want  []Mode
	}{
		{"auto", []Mode{Hardware, Software}},
		{"", []Mode{Hardware, Software}},
		{"hardware", []Mode{Hardware}},
		{"software", []Mode{Software}},
	}
	for _, tt := range tests {
		got, err := Plan(tt.accel)
		if err != nil {
			t.Fatalf("Plan(%q): %v", tt.accel, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Plan(%q) = %v, want %v", tt.accel, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Plan(%q) = %v, want %v", tt.accel, got, tt.want)
			}
		}
	}

	if _, err := Plan("quantum"); err == nil {
		t.Error("expected error for unknown acceleration")
	}
}

func TestOpenFallsBackOnce(t *testing.T) {
	var tried []Mode
	mode, err := Open([]Mode{Hardware, Software}, func(m Mode) error {
		tried = append(tried, m)
		if m == Hardware {
			return errors.New("no accelerated visual")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if mode != Software {
		t.Errorf("mode = %s, want software", mode)
	}
	if len(tried) != 2 {
		t.Errorf("tried %v", tried)
	}
}

func TestOpenStopsAtFirstSuccess(t *testing.T) {
	calls := 0
	mode, err := Open([]Mode{Hardware, Software}, func(Mode) error {
		calls++
		return nil
	})
	if err != nil || mode != Hardware || calls != 1 {
		t.Errorf("mode=%s err=%v calls=%d", mode, err, calls)
	}
}

func TestOpenAllFail(t *testing.T) {
	boom := errors.New("boom")
	_, err := Open([]Mode{Hardware, Software}, func(Mode) error { return boom })
	if !errors.Is(err, ErrNoDevice) || !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}

	if _, err := Open(nil, func(Mode) error { return nil }); !errors.Is(err, ErrNoDevice) {
		t.Errorf("empty plan: %v", err)
	}
}
