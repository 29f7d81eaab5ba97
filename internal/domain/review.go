package domain

// ReviewStatus is the moderation state of a Review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

// CanTransition reports whether a review in status s may be moved to next.
//
// Allowed moves:
//   - pending  -> approved | rejected
//   - approved -> rejected
//   - rejected -> approved
//
// Nothing moves back to pending, and a move to the current status is refused
// so callers can report a no-op explicitly.
func (s ReviewStatus) CanTransition(next ReviewStatus) bool {
	switch s {
	case ReviewPending:
		return next == ReviewApproved || next == ReviewRejected
	case ReviewApproved:
		return next == ReviewRejected
	case ReviewRejected:
		return next == ReviewApproved
	}
	return false
}

// Relationship describes how a reviewer knows the comedian's work.
type Relationship string

const (
	RelationshipPress    Relationship = "press"
	RelationshipPeer     Relationship = "peer"
	RelationshipAudience Relationship = "audience"
)

// Relationships lists the accepted Relationship values in display order.
func Relationships() []string {
	return []string{string(RelationshipPress), string(RelationshipPeer), string(RelationshipAudience)}
}

// Label returns the human-readable label shown next to a review.
func (r Relationship) Label() string {
	switch r {
	case RelationshipPress:
		return "Press / Media"
	case RelationshipPeer:
		return "Fellow Comedian / Industry"
	case RelationshipAudience:
		return "Audience Member"
	}
	return ""
}
