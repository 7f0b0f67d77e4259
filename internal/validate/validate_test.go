package validate

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ann@x.com", true},
		{"ANN@X.COM", true},
		{"first.last@sub.domain.org", true},
		{"a@b.c", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"spaces in@local.com", false},
		{"two@@ats.com", false},
		{"@nodomain.com", false},
		{"user@.com", false}, // the domain needs a character before the dot
		{"user@host.", false},
	}

	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-02-30", true}, // format-only: calendar validity is not checked
		{"2024-1-01", false},
		{"2024/01/01", false},
		{"20240101", false},
		{"", false},
		{"2024-01-01T00:00:00Z", false},
		{"yyyy-mm-dd", false},
	}

	for _, tc := range cases {
		if got := IsValidDate(tc.date); got != tc.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}
