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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidCompanyKey(t *testing.T) {
	valid := []string{"BranchA", "branch-a", "branch_a.2"}
	invalid := []string{"a", "", "branch a", "branch/a"}
	for _, s := range valid {
		if !IsValidCompanyKey(s) {
			t.Errorf("IsValidCompanyKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidCompanyKey(s) {
			t.Errorf("IsValidCompanyKey(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"N", "D", "L"}
	if !IsInSlice("D", slice) {
		t.Error("IsInSlice(\"D\") = false, want true")
	}
	if IsInSlice("X", slice) {
		t.Error("IsInSlice(\"X\") = true, want false")
	}
}
