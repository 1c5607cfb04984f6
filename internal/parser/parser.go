package parser

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/parkwatch/parkwatch/internal/parking"
)

const (
	indicatorSelector = "div.facility-detail span.status-indicator"
	titleSelector     = "div.facility-detail h2.facility-title"

	// DetailsUnavailable is the details text used when the structured
	// indicator was found but the panel carries no title.
	DetailsUnavailable = "details unavailable"

	// StructureChanged is the details text used when neither the
	// structured lookup nor the keyword fallback matched anything.
	StructureChanged = "page structure may have changed; verify manually"
)

// indicatorRule maps a class-attribute token to a vacancy outcome.
// Rules are evaluated top to bottom; the first matching token wins.
type indicatorRule struct {
	token   string
	vacancy bool
}

// "empty" and "contact" come before "full": an ambiguous contact-us
// status is treated as actionable, not as full.
var indicatorRules = []indicatorRule{
	{token: "empty", vacancy: true},
	{token: "contact", vacancy: true},
	{token: "full", vacancy: false},
}

// Keyword sets for the fallback scan. "contact" counts as full here:
// without the panel context there is nothing to disambiguate, so the
// safe default wins.
var (
	vacancyKeywords = []string{"vacant", "space available", "spaces available", "empty"}
	fullKeywords    = []string{"full", "no spaces", "contact"}
)

// Parser turns raw page markup into a parking.State.
type Parser struct {
	dumpPath string
	log      *zap.Logger
}

// New creates a Parser. dumpPath is the diagnostic side file written
// when the structured indicator is missing; empty disables the dump.
func New(dumpPath string, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{dumpPath: dumpPath, log: log}
}

// Parse classifies the page and never fails outward: any detection
// problem degrades to a best-effort state. The structured lookup always
// takes precedence; the keyword fallback runs only when the indicator
// element is entirely absent.
func (p *Parser) Parse(markup string) parking.State {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		p.log.Warn("markup could not be parsed as HTML", zap.Error(err))
		p.dump(markup)
		return p.fallback(strings.ToLower(markup))
	}

	indicator := doc.Find(indicatorSelector).First()
	if indicator.Length() == 0 {
		// Structured element absent entirely: keep the page around for
		// manual inspection, then scan the text.
		p.dump(markup)
		return p.fallback(strings.ToLower(doc.Text()))
	}

	class, _ := indicator.Attr("class")
	hasVacancy, known := classify(class)
	if !known {
		p.log.Warn("unexpected status indicator; assuming no vacancy",
			zap.String("class", class))
	}

	details := strings.TrimSpace(doc.Find(titleSelector).First().Text())
	if details == "" {
		details = DetailsUnavailable
	}

	return parking.NewState(hasVacancy, details)
}

// classify runs the class attribute through the indicator rule table.
// The second return reports whether any rule matched.
func classify(class string) (vacancy, known bool) {
	for _, r := range indicatorRules {
		if strings.Contains(class, r.token) {
			return r.vacancy, true
		}
	}
	return false, false
}

// fallback applies the keyword heuristic over lowercased page text.
// Full keywords veto vacancy keywords; no match at all defaults to
// "assume full" with a details text asking for manual verification.
func (p *Parser) fallback(text string) parking.State {
	switch {
	case containsAny(text, vacancyKeywords) && !containsAny(text, fullKeywords):
		return parking.NewState(true, "vacancy keyword found in page text")
	case containsAny(text, fullKeywords):
		return parking.NewState(false, "full keyword found in page text")
	default:
		return parking.NewState(false, StructureChanged)
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// dump writes the raw markup to the diagnostic side file. A failed
// write is logged and otherwise ignored.
func (p *Parser) dump(markup string) {
	if p.dumpPath == "" {
		return
	}
	if err := os.WriteFile(p.dumpPath, []byte(markup), 0644); err != nil {
		p.log.Warn("writing diagnostic dump",
			zap.String("path", p.dumpPath), zap.Error(err))
		return
	}
	p.log.Info("structured indicator missing; page dumped for inspection",
		zap.String("path", p.dumpPath))
}
