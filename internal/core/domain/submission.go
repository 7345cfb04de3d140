package domain

import "time"

type SubmissionKind string

const (
	KindInquiry    SubmissionKind = "inquiry"
	KindContact    SubmissionKind = "contact"
	KindMembership SubmissionKind = "membership"
)

var BusinessTypes = []string{"Retailer", "Wholesaler", "Distributor", "Other"}

type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Phone     string
}

// A Submission is a form the visitor sent: an inquiry for the cart contents,
// a contact message or a membership application.
type Submission struct {
	ID           string
	Kind         SubmissionKind
	CreatedAt    time.Time
	VisitorID    string
	Contact      Contact
	Subject      string
	Message      string
	BusinessType string
	Items        []CartItem
}
