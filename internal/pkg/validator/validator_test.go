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
	valid := []string{"2024-01-01", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2024-01-32", "2023-02-29", "01-01-2024", "2024/01/01", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2023-12"}
	invalid := []string{"2024-13", "2024-00", "2024", "2024-1", "2024-01-01", ""}
	for _, month := range valid {
		if _, ok := IsValidMonth(month); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", month)
		}
	}
	for _, month := range invalid {
		if _, ok := IsValidMonth(month); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", month)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{"12345678901", "123.456.789-01"}
	invalid := []string{"1234567890", "123456789012", "1234567890a", ""}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = false, want true", cpf)
		}
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = true, want false", cpf)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"joao.silva", "maria_souza", "admin-01", "abc"}
	invalid := []string{"ab", "user name", "user@name", ""}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}
