package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-trig/measure/accuracy"
)

func TestLinspace(t *testing.T) {
	s := Linspace(-2*math.Pi, 2*math.Pi, 9)
	if len(s) != 9 {
		t.Fatalf("len = %d, want 9", len(s))
	}
	if s[0] != -2*math.Pi || s[8] != 2*math.Pi {
		t.Fatalf("endpoints = %v, %v, want ±2π", s[0], s[8])
	}
	if math.Abs(s[4]) > 1e-15 {
		t.Fatalf("s[4] = %v, want 0", s[4])
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("not increasing at %d: %v <= %v", i, s[i], s[i-1])
		}
	}
}

func TestLinspaceMatchesSweep(t *testing.T) {
	got := Linspace(-1, 3, 7)
	want := accuracy.Sweep(-1, 3, 7)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Linspace[%d] = %v, Sweep = %v", i, got[i], want[i])
		}
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if got := Linspace(0, 1, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Linspace(3, 4, 1) = %v, want [3]", got)
	}
}

func TestDeterministicAngles(t *testing.T) {
	a := DeterministicAngles(42, -1, 1, 64)
	b := DeterministicAngles(42, -1, 1, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("angles not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicAnglesDifferentSeeds(t *testing.T) {
	a := DeterministicAngles(1, 0, 1, 16)
	b := DeterministicAngles(2, 0, 1, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical angles")
	}
}

func TestToFloat32(t *testing.T) {
	got := ToFloat32([]float64{0.5, -1.25})
	if len(got) != 2 || got[0] != 0.5 || got[1] != -1.25 {
		t.Fatalf("ToFloat32 = %v", got)
	}
}
