package models

// Role names accepted by the create and claim operations
const (
	RolePlaintiff = "plaintiff"
	RoleDefendant = "defendant"
)

// Case statuses stored on the document. Verdict presence is the authoritative
// "finished" signal; status is a denormalized hint for list views.
const (
	CaseStatusWaiting  = "waiting"
	CaseStatusFinished = "finished"
)

// Objection statuses
const (
	ObjectionPending  = "pending"
	ObjectionResolved = "resolved"
)

// Case is the central dispute document, keyed by a short human-typeable code
type Case struct {
	ID        string     `json:"id" bson:"_id"`
	CreatedBy string     `json:"createdBy" bson:"createdBy"`
	Status    string     `json:"status" bson:"status"`
	SideA     Side       `json:"sideA" bson:"sideA"`
	SideB     Side       `json:"sideB" bson:"sideB"`
	Verdict   *Verdict   `json:"verdict" bson:"verdict"`
	Objection *Objection `json:"objection" bson:"objection"`
	CreatedAt int64      `json:"createdAt" bson:"createdAt"`
}

// Side holds one participant seat. A nil UID means the seat is unclaimed.
type Side struct {
	UID       *string `json:"uid" bson:"uid"`
	Content   string  `json:"content" bson:"content"`
	Submitted bool    `json:"submitted" bson:"submitted"`
}

// HeldBy reports whether the given identity holds this seat
func (s Side) HeldBy(uid string) bool {
	return s.UID != nil && *s.UID == uid
}

// Claimed reports whether any identity holds this seat
func (s Side) Claimed() bool {
	return s.UID != nil
}

// Objection is the one-time supplementary statement that triggers re-adjudication
type Objection struct {
	UID       string `json:"uid" bson:"uid"`
	Role      string `json:"role" bson:"role"`
	Content   string `json:"content" bson:"content"`
	Status    string `json:"status" bson:"status"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// PendingObjection reports whether an unresolved objection exists on the case
func (c *Case) PendingObjection() bool {
	return c.Objection != nil && c.Objection.Status == ObjectionPending
}

// BothSubmitted reports whether both statements have been handed in
func (c *Case) BothSubmitted() bool {
	return c.SideA.Submitted && c.SideB.Submitted
}

// RoleOf returns "A" or "B" for the seat held by uid, or "" when uid holds neither
func (c *Case) RoleOf(uid string) string {
	if c.SideA.HeldBy(uid) {
		return "A"
	}
	if c.SideB.HeldBy(uid) {
		return "B"
	}
	return ""
}
