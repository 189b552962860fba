package normalize

import (
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"space thousands", "R 1 943.22", f(1943.22)},
		{"no space", "R1943.22", f(1943.22)},
		{"comma thousands", "1,943.22", f(1943.22)},
		{"bare number", "500000", f(500000)},
		{"parenthesized negative", "(500.00)", f(-500)},
		{"dash", "-", nil},
		{"r dash", "R -", nil},
		{"tba", "TBA", nil},
		{"not applicable", "N/A", nil},
		{"empty", "", nil},
		{"text", "Agreed Value", nil},
		{"nbsp thousands", "R 5 000.00", f(5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(tt.input)
			if !floatPtrEqual(got, tt.want) {
				t.Errorf("Currency(%q) = %v, want %v", tt.input, fv(got), fv(tt.want))
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage("7.5%"); got == nil || *got != 7.5 {
		t.Errorf("Percentage(7.5%%) = %v, want 7.5", fv(got))
	}
	if got := Percentage("no rate here"); got != nil {
		t.Errorf("Percentage() = %v, want nil", *got)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // "" means nil
	}{
		{"slash numeric", "01/03/2024", "2024-03-01"},
		{"single digit day", "1/3/2024", "2024-03-01"},
		{"dashed numeric", "01-03-2024", "2024-03-01"},
		{"long month", "1 March 2024", "2024-03-01"},
		{"abbreviated month", "01 Mar 2024", "2024-03-01"},
		{"iso passthrough", "2024-03-01", "2024-03-01"},
		{"two digit year", "01/03/24", ""},
		{"tba", "TBA", ""},
		{"empty", "", ""},
		{"garbage", "sometime soon", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.input)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Date(%q) = %q, want nil", tt.input, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Date(%q) = %v, want %q", tt.input, sv(got), tt.want)
			}
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	first := Date("15/07/2024")
	if first == nil {
		t.Fatal("Date(15/07/2024) = nil")
	}
	second := Date(*first)
	if second == nil || *second != *first {
		t.Errorf("Date(%q) = %v, want itself", *first, sv(second))
	}
}

func TestBoolean(t *testing.T) {
	tests := []struct {
		input string
		want  string // "true", "false", "nil"
	}{
		{"Yes", "true"},
		{"y", "true"},
		{"TRUE", "true"},
		{"✓", "true"},
		{"No", "false"},
		{"n", "false"},
		{"0", "false"},
		{"maybe", "nil"},
		{"", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Boolean(tt.input)
			switch tt.want {
			case "nil":
				if got != nil {
					t.Errorf("Boolean(%q) = %v, want nil", tt.input, *got)
				}
			case "true":
				if got == nil || !*got {
					t.Errorf("Boolean(%q) = %v, want true", tt.input, got)
				}
			case "false":
				if got == nil || *got {
					t.Errorf("Boolean(%q) = %v, want false", tt.input, got)
				}
			}
		})
	}
}

func TestAddress(t *testing.T) {
	addr := Address("Farm Rietfontein, Portion 12\nBethlehem\nFree State\n9700")
	if addr.Line1 == nil || *addr.Line1 != "Farm Rietfontein" {
		t.Errorf("Line1 = %v, want Farm Rietfontein", sv(addr.Line1))
	}
	if addr.City == nil || *addr.City != "Bethlehem" {
		t.Errorf("City = %v, want Bethlehem", sv(addr.City))
	}
	if addr.ProvinceState == nil || *addr.ProvinceState != "Free State" {
		t.Errorf("ProvinceState = %v, want Free State", sv(addr.ProvinceState))
	}
	if addr.PostalCode == nil || *addr.PostalCode != "9700" {
		t.Errorf("PostalCode = %v, want 9700", sv(addr.PostalCode))
	}
	if addr.Country != "South Africa" {
		t.Errorf("Country = %q, want South Africa", addr.Country)
	}
	if addr.FullAddress == nil || *addr.FullAddress != "Farm Rietfontein, Portion 12, Bethlehem, Free State, 9700" {
		t.Errorf("FullAddress = %v", sv(addr.FullAddress))
	}
}

func TestAddressSingleSegment(t *testing.T) {
	addr := Address("12 Main Road")
	if addr.Line1 == nil || *addr.Line1 != "12 Main Road" {
		t.Errorf("Line1 = %v, want 12 Main Road", sv(addr.Line1))
	}
	if addr.City != nil || addr.ProvinceState != nil {
		t.Error("single segment should not populate city or province")
	}
}

func TestAddressEmpty(t *testing.T) {
	addr := Address("   ")
	if addr.FullAddress != nil {
		t.Errorf("FullAddress = %v, want nil", sv(addr.FullAddress))
	}
	if addr.Country != "South Africa" {
		t.Errorf("Country = %q, want South Africa", addr.Country)
	}
}

func TestFieldValue(t *testing.T) {
	text := "POLICY DETAILS\nInsurer name: Hollard Insurance\nPolicy number  ABC123\nPremium Summary\n"

	tests := []struct {
		name  string
		label string
		want  string // "" means nil
	}{
		{"colon delimiter", "Insurer name", "Hollard Insurance"},
		{"double space delimiter", "Policy number", "ABC123"},
		{"label is line prefix only", "Premium", ""},
		{"missing label", "Broker", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldValue(text, tt.label)
			if tt.want == "" {
				if got != nil {
					t.Errorf("FieldValue(%q) = %q, want nil", tt.label, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("FieldValue(%q) = %v, want %q", tt.label, sv(got), tt.want)
			}
		})
	}
}

func TestFieldFirst(t *testing.T) {
	text := "FSB/FSP number: 4815\n"
	got := FieldFirst(text, "Licence Number", "FSB/FSP number", "FSP number")
	if got == nil || *got != "4815" {
		t.Errorf("FieldFirst() = %v, want 4815", sv(got))
	}
}

func f(v float64) *float64 { return &v }

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func sv(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
