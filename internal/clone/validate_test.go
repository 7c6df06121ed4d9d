package clone

import "testing"

func TestValidateURL_Accepts(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com/path?q=1", "http://example.com/path?q=1"},
		{"  https://example.com/  ", "https://example.com/"},
		{"HTTPS://Example.com", "https://Example.com"},
		{"http://localhost:3000", "http://localhost:3000"},
	}

	for _, test := range tests {
		parsed, err := ValidateURL(test.input)
		if err != nil {
			t.Errorf("ValidateURL(%q) returned error: %v", test.input, err)
			continue
		}
		if parsed.String() != test.expected {
			t.Errorf("ValidateURL(%q) = %s, expected %s", test.input, parsed.String(), test.expected)
		}
	}
}

func TestValidateURL_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\t\n",
		"example.com",
		"www.example.com/page",
		"ftp://example.com",
		"mailto:someone@example.com",
		"https://",
		"https:example.com",
		"http://exa mple.com",
		"://missing-scheme.com",
		"not a url",
	}

	for _, input := range inputs {
		parsed, err := ValidateURL(input)
		if err == nil {
			t.Errorf("ValidateURL(%q) = %v, expected an error", input, parsed)
			continue
		}
		if !IsInvalidURL(err) {
			t.Errorf("ValidateURL(%q) error kind = %q, expected %q", input, KindOf(err), KindInvalidURL)
		}
	}
}
