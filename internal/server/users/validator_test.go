package users

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@test.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"plainaddress", false},
		{"no-at-sign.com", false},
		{"missing-domain@", false},
		{"@missing-local.com", false},
		{"no-dot-after-at@domain", false},
		{"trailing-dot@domain.", false},
	}

	for _, tc := range tests {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all four classes", "Str0ng!Pw", true},
		{"comma counts as special", "Aa1,bcde", true},
		{"seven chars", "short1!", false},
		{"exactly eight", "Short1!a", true},
		{"no uppercase", "weak1!pass", false},
		{"no lowercase", "WEAK1!PASS", false},
		{"no digit", "Weakness!", false},
		{"no special", "Weakness1", false},
		{"empty", "", false},
		{"spaces are not special", "Aa1 bcde", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStrongPassword(tc.password); got != tc.want {
				t.Errorf("IsStrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
