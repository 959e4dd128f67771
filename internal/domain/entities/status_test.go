package entities

import "testing"

func TestInquiryStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to InquiryStatus
		ok       bool
	}{
		{InquiryStatusNew, InquiryStatusReviewed, true},
		{InquiryStatusNew, InquiryStatusQuoted, true},
		{InquiryStatusNew, InquiryStatusConverted, true},
		{InquiryStatusReviewed, InquiryStatusReviewed, true},
		{InquiryStatusQuoted, InquiryStatusReviewed, false},
		{InquiryStatusConverted, InquiryStatusNew, false},
		{InquiryStatusReviewed, "bogus", false},
		{"bogus", InquiryStatusReviewed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestQuoteStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to QuoteStatus
		ok       bool
	}{
		{QuoteStatusSent, QuoteStatusViewed, true},
		{QuoteStatusSent, QuoteStatusAccepted, true},
		{QuoteStatusViewed, QuoteStatusAccepted, true},
		{QuoteStatusViewed, QuoteStatusViewed, true},
		{QuoteStatusAccepted, QuoteStatusViewed, false},
		{QuoteStatusViewed, QuoteStatusSent, false},
		{QuoteStatusSent, "bogus", false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestEstimateCloneIsDeep(t *testing.T) {
	e := Estimate{
		Spec:                 BuildSpec{Modules: []string{"crud-core"}},
		ReviewTriggerModules: []string{"Payments & billing"},
		CostDrivers:          []CostDriver{{Name: "Core data & CRUD", Impact: ImpactHigh, Amount: 1600}},
		Assumptions:          []string{"No target platform was specified; a typical default was assumed."},
	}
	c := e.Clone()

	e.Spec.Modules[0] = "mutated"
	e.ReviewTriggerModules[0] = "mutated"
	e.CostDrivers[0].Amount = -1
	e.Assumptions[0] = "mutated"

	if c.Spec.Modules[0] != "crud-core" ||
		c.ReviewTriggerModules[0] != "Payments & billing" ||
		c.CostDrivers[0].Amount != 1600 ||
		c.Assumptions[0] == "mutated" {
		t.Fatalf("clone shares state with source: %+v", c)
	}
}
