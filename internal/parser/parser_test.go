package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("../../testdata/fixtures", name))
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestParseStructuredIndicator(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantVacancy bool
		wantDetails string
	}{
		{"empty indicator means vacancy", "facility_empty.html", true, "Garage Centrum — Level 2"},
		{"contact indicator means vacancy", "facility_contact.html", true, "Garage Centrum — Level 2"},
		{"full indicator means no vacancy", "facility_full.html", false, "Garage Centrum — Level 2"},
		{"unknown indicator defaults to no vacancy", "facility_unknown.html", false, "Garage Centrum — Level 2"},
		{"missing title uses placeholder", "facility_untitled.html", true, DetailsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("", nil)
			st := p.Parse(loadFixture(t, tt.fixture))

			if st.HasVacancy != tt.wantVacancy {
				t.Errorf("HasVacancy = %v, expected %v", st.HasVacancy, tt.wantVacancy)
			}
			if st.Details != tt.wantDetails {
				t.Errorf("Details = %q, expected %q", st.Details, tt.wantDetails)
			}
			if st.Timestamp == "" {
				t.Error("Timestamp should not be empty")
			}
		})
	}
}

func TestParseFallbackKeywords(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantVacancy bool
		wantDetails string
	}{
		{"vacancy keyword and no full keyword", "fallback_vacant.html", true, "vacancy keyword found in page text"},
		{"full keyword", "fallback_full.html", false, "full keyword found in page text"},
		{"no keywords defaults to no vacancy", "fallback_neither.html", false, StructureChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("", nil)
			st := p.Parse(loadFixture(t, tt.fixture))

			if st.HasVacancy != tt.wantVacancy {
				t.Errorf("HasVacancy = %v, expected %v", st.HasVacancy, tt.wantVacancy)
			}
			if st.Details != tt.wantDetails {
				t.Errorf("Details = %q, expected %q", st.Details, tt.wantDetails)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	markup := loadFixture(t, "fallback_full.html")
	p := New("", nil)

	first := p.Parse(markup)
	second := p.Parse(markup)

	if first.HasVacancy != second.HasVacancy || first.Details != second.Details {
		t.Errorf("identical markup produced different states: %+v vs %+v", first, second)
	}
}

func TestParseDumpsPageWhenIndicatorMissing(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "dump.html")
	markup := loadFixture(t, "fallback_full.html")

	p := New(dumpPath, nil)
	p.Parse(markup)

	data, err := os.ReadFile(dumpPath)
	if err != nil {
		t.Fatalf("expected diagnostic dump at %s: %v", dumpPath, err)
	}
	if string(data) != markup {
		t.Error("dump should contain the raw markup")
	}
}

func TestParseDoesNotDumpWhenIndicatorPresent(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "dump.html")

	p := New(dumpPath, nil)
	p.Parse(loadFixture(t, "facility_full.html"))

	if _, err := os.Stat(dumpPath); !os.IsNotExist(err) {
		t.Error("no dump should be written when the structured indicator is present")
	}
}

// Ambiguous-but-present never triggers the fallback: the contact page
// text also contains the full keyword "contact", so a fallback run
// would flip the outcome.
func TestStructuredLookupTakesPrecedence(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "dump.html")

	p := New(dumpPath, nil)
	st := p.Parse(loadFixture(t, "facility_contact.html"))

	if !st.HasVacancy {
		t.Error("contact indicator should be treated as vacancy, not routed to fallback")
	}
	if _, err := os.Stat(dumpPath); !os.IsNotExist(err) {
		t.Error("fallback dump should not run when the indicator is present")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		class       string
		wantVacancy bool
		wantKnown   bool
	}{
		{"status-indicator status-empty", true, true},
		{"status-indicator status-contact", true, true},
		{"status-indicator status-full", false, true},
		{"status-indicator status-waitlist", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			vacancy, known := classify(tt.class)
			if vacancy != tt.wantVacancy || known != tt.wantKnown {
				t.Errorf("classify(%q) = (%v, %v), expected (%v, %v)",
					tt.class, vacancy, known, tt.wantVacancy, tt.wantKnown)
			}
		})
	}
}
