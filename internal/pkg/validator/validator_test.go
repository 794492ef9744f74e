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

func TestIsValidPDFURL(t *testing.T) {
	valid := []string{
		"https://x.com/file.pdf",
		"http://x.com/file.pdf",
		"https://example.com/dir/REPORT.PDF",
	}
	invalid := []string{
		"http://x.com/file.doc",
		"ftp://x.com/file.pdf",
		"x.com/file.pdf",
		"https://.pdf",
		"",
	}
	for _, url := range valid {
		if !IsValidPDFURL(url) {
			t.Errorf("IsValidPDFURL(%q) = false, want true", url)
		}
	}
	for _, url := range invalid {
		if IsValidPDFURL(url) {
			t.Errorf("IsValidPDFURL(%q) = true, want false", url)
		}
	}
}

func TestIsValidNIC(t *testing.T) {
	valid := []string{"853400670V", "853400670x", "200034006701"}
	invalid := []string{"85340067V", "85340067012", "abcdefghiV", ""}
	for _, nic := range valid {
		if !IsValidNIC(nic) {
			t.Errorf("IsValidNIC(%q) = false, want true", nic)
		}
	}
	for _, nic := range invalid {
		if IsValidNIC(nic) {
			t.Errorf("IsValidNIC(%q) = true, want false", nic)
		}
	}
}

func TestIsValidResetCode(t *testing.T) {
	if !IsValidResetCode("123456") {
		t.Error("IsValidResetCode(123456) = false, want true")
	}
	for _, code := range []string{"12345", "1234567", "12345a", ""} {
		if IsValidResetCode(code) {
			t.Errorf("IsValidResetCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-03"); !ok {
		t.Error("IsValidDate(2024-01-03) = false, want true")
	}
	for _, d := range []string{"03-01-2024", "2024/01/03", "2024-13-01", ""} {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}
