package suminsured

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAmount  float64
		haveAmount  bool
		wantText    string
		wantBasis   string
		wantGap     bool
	}{
		{name: "plain number", input: "45000", wantAmount: 45000, haveAmount: true},
		{name: "currency format", input: "R 500 000.00", wantAmount: 500000, haveAmount: true},
		{name: "agreed value", input: "Agreed Value", wantText: "Agreed Value", wantBasis: BasisAgreedValue},
		{name: "retail value", input: "Retail Value", wantText: "Retail Value", wantBasis: BasisRetailValue},
		{name: "market value", input: "Market Value", wantText: "Market Value", wantBasis: BasisMarketValue},
		{name: "new replacement", input: "New Replacement Value", wantText: "New Replacement Value", wantBasis: BasisReplacementValue},
		{name: "trade value has no basis", input: "Trade Value", wantText: "Trade Value"},
		{name: "tba", input: "TBA", wantText: "TBA"},
		{name: "to be advised", input: "To be advised", wantText: "To be advised"},
		{name: "as per valuation", input: "As per valuation", wantText: "As per valuation"},
		{name: "empty", input: "", wantGap: true},
		{name: "unrecognized", input: "see attached", wantGap: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)

			if tt.wantGap {
				if got.Amount != nil || got.Text != nil || got.Basis != nil || got.IsTextBased {
					t.Errorf("Classify(%q) = %+v, want all-null gap", tt.input, got)
				}
				return
			}

			if tt.haveAmount {
				if got.Amount == nil || *got.Amount != tt.wantAmount {
					t.Fatalf("Classify(%q).Amount = %v, want %v", tt.input, got.Amount, tt.wantAmount)
				}
				if got.Text != nil || got.IsTextBased {
					t.Errorf("Classify(%q) populated text alongside amount", tt.input)
				}
				return
			}

			if got.Amount != nil {
				t.Errorf("Classify(%q) populated amount alongside text", tt.input)
			}
			if got.Text == nil || *got.Text != tt.wantText {
				t.Fatalf("Classify(%q).Text = %v, want %q", tt.input, got.Text, tt.wantText)
			}
			if !got.IsTextBased {
				t.Errorf("Classify(%q).IsTextBased = false, want true", tt.input)
			}
			if tt.wantBasis == "" {
				if got.Basis != nil {
					t.Errorf("Classify(%q).Basis = %q, want nil", tt.input, *got.Basis)
				}
			} else if got.Basis == nil || *got.Basis != tt.wantBasis {
				t.Errorf("Classify(%q).Basis = %v, want %q", tt.input, got.Basis, tt.wantBasis)
			}
		})
	}
}
