package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-10", "2024-02-29", "2000-01-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "10/03/2025", "2025-3-1", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidLogin(t *testing.T) {
	valid := []string{"dupont.jean", "delacroix.marie2", "o.n"}
	invalid := []string{"Dupont.Jean", "dupont", ".jean", "dupont.", "du pont.jean", ""}
	for _, l := range valid {
		if !IsValidLogin(l) {
			t.Errorf("IsValidLogin(%q) = false, want true", l)
		}
	}
	for _, l := range invalid {
		if IsValidLogin(l) {
			t.Errorf("IsValidLogin(%q) = true, want false", l)
		}
	}
}
