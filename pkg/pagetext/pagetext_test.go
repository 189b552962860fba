package pagetext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromFileTextPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.txt")
	content := "POLICY DETAILS\nPolicy number: ABC123\n\fFIRE SECTION\nBuildings\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, quality, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if doc.Source != "schedule.txt" {
		t.Errorf("Source = %q, want schedule.txt", doc.Source)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(doc.Pages))
	}
	if !strings.Contains(doc.Pages[1], "FIRE SECTION") {
		t.Errorf("Pages[1] = %q, want fire section text", doc.Pages[1])
	}
	if quality.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", quality.PageCount)
	}
	if quality.PrintableRatio < 0.99 {
		t.Errorf("PrintableRatio = %v, want ~1 for plain text", quality.PrintableRatio)
	}
}

func TestFromFileCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, _, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if strings.Contains(doc.Text(), "\r") {
		t.Error("carriage returns survived normalization")
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, _, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("FromFile() succeeded on a missing file")
	}
}

func TestLowQuality(t *testing.T) {
	tests := []struct {
		name    string
		quality Quality
		want    bool
	}{
		{"clean text", Quality{PageCount: 1, CharsPerPage: 2000, PrintableRatio: 0.99}, false},
		{"mostly binary", Quality{PageCount: 1, CharsPerPage: 2000, PrintableRatio: 0.5}, true},
		{"near empty pages", Quality{PageCount: 10, CharsPerPage: 12, PrintableRatio: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quality.LowQuality(); got != tt.want {
				t.Errorf("LowQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`Sum Insured`, "Sum Insured"},
		{`R 500 \050excl VAT\051`, "R 500 (excl VAT)"},
		{`a\040b`, "a b"},
		{`line\nnext`, "line\nnext"},
		{`back\\slash`, `back\slash`},
	}
	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.raw)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStreamToText(t *testing.T) {
	stream := "BT\n/F1 10 Tf\n(Policy number: ABC123) Tj\n0 -12 Td\n(Insurer: Example) Tj\nT*\n(Buildings) Tj\nET\n"
	got := streamToText([]byte(stream))
	want := "Policy number: ABC123\nInsurer: Example\nBuildings"
	if got != want {
		t.Errorf("streamToText() = %q, want %q", got, want)
	}
}

func TestDetectLanguage(t *testing.T) {
	text := "This policy schedule sets out the sections, sums insured and premiums applicable to the insurance cover provided."
	lang := DetectLanguage(text)
	if lang == nil || *lang != "en" {
		t.Errorf("DetectLanguage() = %v, want en", lang)
	}

	if lang := DetectLanguage("short"); lang != nil {
		t.Errorf("DetectLanguage() on short input = %v, want nil", *lang)
	}
}
