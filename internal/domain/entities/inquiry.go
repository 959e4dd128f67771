package entities

import "time"

// InquiryStatus represents the admin-driven lifecycle of a visitor inquiry.
//
// Domain notes:
//   - Transitions are forward-only: new -> reviewed -> quoted -> converted.
//   - The data layer accepts any stored value; CanTransitionTo is the gate
//     every mutation must consult before persisting.

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusReviewed  InquiryStatus = "reviewed"
	InquiryStatusQuoted    InquiryStatus = "quoted"
	InquiryStatusConverted InquiryStatus = "converted"
)

var inquiryStatusRank = map[InquiryStatus]int{
	InquiryStatusNew:       0,
	InquiryStatusReviewed:  1,
	InquiryStatusQuoted:    2,
	InquiryStatusConverted: 3,
}

func (s InquiryStatus) Valid() bool {
	_, ok := inquiryStatusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next only ever moves
// forward in the fixed order. Re-entering the same status is allowed so that
// patching notes alongside an unchanged status is not rejected.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	from, okFrom := inquiryStatusRank[s]
	to, okTo := inquiryStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to >= from
}

// UserType is the visitor's answer to "who is this for?".
type UserType string

const (
	UserTypeJustMe    UserType = "just-me"
	UserTypeTeam      UserType = "team"
	UserTypeCustomers UserType = "customers"
	UserTypeEveryone  UserType = "everyone"
)

// Timeline is the visitor's answer to "when do you need it?".
type Timeline string

const (
	TimelineExploring Timeline = "exploring"
	TimelineSoon      Timeline = "soon"
	TimelineASAP      Timeline = "asap"
)

// Inquiry is a visitor's project inquiry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// RoughMin/RoughMax are the keyword-driven quick band computed at submission
// time (USD, whole dollars): RoughMin >= 1500 and RoughMax >= RoughMin + 1000.
// Inquiries are never deleted; admins only patch status, notes and links.
type Inquiry struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	UserType    UserType      `json:"user_type"`
	Timeline    Timeline      `json:"timeline"`
	Email       string        `json:"email"`
	Name        string        `json:"name,omitempty"`
	RoughMin    int           `json:"rough_min"`
	RoughMax    int           `json:"rough_max"`
	Keywords    []string      `json:"keywords"`
	Status      InquiryStatus `json:"status"`
	ReviewNotes string        `json:"review_notes,omitempty"`
	ActualQuote float64       `json:"actual_quote,omitempty"`
	EstimateID  string        `json:"estimate_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	ReviewedAt  time.Time     `json:"reviewed_at,omitzero"`
}
