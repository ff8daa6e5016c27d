package models

// Feedback values accepted on a verdict
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// PunishmentCount is the number of reconciliation tasks every verdict carries
const PunishmentCount = 5

// Verdict is the structured adjudication result returned by the oracle.
// Field names mirror the provider's JSON contract so the raw response can be
// decoded without a translation layer.
type Verdict struct {
	VerdictTitle      string      `json:"verdict_title" bson:"verdict_title"`
	FaultRatio        *FaultRatio `json:"fault_ratio,omitempty" bson:"fault_ratio,omitempty"`
	LawReference      string      `json:"law_reference" bson:"law_reference"`
	Analysis          string      `json:"analysis" bson:"analysis"`
	PerspectiveTaking string      `json:"perspective_taking" bson:"perspective_taking"`
	BearWisdom        string      `json:"bear_wisdom" bson:"bear_wisdom"`
	Punishments       []string    `json:"punishments" bson:"punishments"`
	Feedback          string      `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// FaultRatio splits responsibility between the two sides
type FaultRatio struct {
	A float64 `json:"A" bson:"A"`
	B float64 `json:"B" bson:"B"`
}

// DisplayFaultRatio returns the stored ratio, defaulting to an even split when
// the provider omitted it. The stored verdict is never backfilled; the default
// exists for presentation only.
func (v *Verdict) DisplayFaultRatio() FaultRatio {
	if v == nil || v.FaultRatio == nil {
		return FaultRatio{A: 50, B: 50}
	}
	return *v.FaultRatio
}
