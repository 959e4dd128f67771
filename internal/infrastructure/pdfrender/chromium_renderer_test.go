package pdfrender

import (
	"strings"
	"testing"
	"time"

	"studio_pricing/internal/domain/entities"
)

func TestBuildQuoteHTML(t *testing.T) {
	q := entities.Quote{
		ShareID:        "k7m2p9qa",
		RecipientEmail: "client@example.com",
		CreatedAt:      time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Snapshot: entities.Estimate{
			PriceMin:   9000,
			PriceMid:   11200,
			PriceMax:   14000,
			DaysMin:    12,
			DaysMax:    18,
			Confidence: 0.78,
			CostDrivers: []entities.CostDriver{
				{Name: "AI assistant / chatbot", Impact: entities.ImpactHigh, Amount: 4200},
				{Name: "Accounts & login", Impact: entities.ImpactLow, Amount: 1300},
			},
			Assumptions: []string{"Platform assumed to be web."},
		},
	}

	html, err := buildQuoteHTML(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"k7m2p9qa",
		"$9000",
		"$14000",
		"confidence 78%",
		"AI assistant / chatbot",
		`class="impact-high"`,
		"Platform assumed to be web.",
		"client@example.com",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}

func TestBuildQuoteHTMLDegraded(t *testing.T) {
	q := entities.Quote{
		CreatedAt: time.Now(),
		Snapshot: entities.Estimate{
			DegradedMode:   true,
			DegradedReason: "no active rate card",
		},
	}

	html, err := buildQuoteHTML(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "incomplete information") || !strings.Contains(html, "no active rate card") {
		t.Fatalf("degraded banner missing: %s", html)
	}
}

func TestBuildQuoteHTMLEscapesContent(t *testing.T) {
	q := entities.Quote{
		CreatedAt: time.Now(),
		Snapshot: entities.Estimate{
			Assumptions: []string{`<script>alert("x")</script>`},
		},
	}

	html, err := buildQuoteHTML(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("assumption content not escaped")
	}
}
