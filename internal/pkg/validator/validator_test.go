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

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "16:30", "23:59"}
	invalid := []string{"24:00", "9:30", "09:60", "0930", "09:3", "", "9:3 AM"}
	for _, s := range valid {
		if !IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Errorf("IsValidDate(%q) = true, want false", "2025-02-30")
	}
	if _, ok := IsValidDate("2025-06-15"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2025-06-15")
	}
	if _, ok := IsValidDate("15/06/2025"); ok {
		t.Errorf("IsValidDate(%q) = true, want false", "15/06/2025")
	}
}

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"Secret!1", true},
		{"Another#Pass", true},
		{"short!A", false},    // under 8 chars
		{"alllower!1", false}, // no uppercase
		{"NoSpecial1", false}, // no special char
		{"", false},
	}
	for _, c := range cases {
		got := IsStrongPassword(c.input)
		if got != c.want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("042") {
		t.Errorf("IsNumeric(%q) = false, want true", "042")
	}
	if IsNumeric("42a") || IsNumeric("") || IsNumeric("-1") {
		t.Errorf("IsNumeric accepted non-numeric input")
	}
}
