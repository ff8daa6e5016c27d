package court

import "github.com/bearcourt/bear-court-api/models"

// ViewerState is the lifecycle state of a case as seen by one identity. It is
// derived, never stored: the same case yields different states for the two
// participants and for bystanders.
type ViewerState string

// Derived per-viewer states
const (
	StateAwaitingRole      ViewerState = "AWAITING_ROLE"
	StateAwaitingStatement ViewerState = "AWAITING_STATEMENT"
	StateAwaitingOpponent  ViewerState = "AWAITING_OPPONENT"
	StateReadyForVerdict   ViewerState = "READY_FOR_VERDICT"
	StateAdjudicated       ViewerState = "ADJUDICATED"
	StateObjectionOpen     ViewerState = "OBJECTION_OPEN"
	StateObserver          ViewerState = "OBSERVER"
)

// ViewerStateOf derives the lifecycle state of courtCase for the given viewer.
// Pure function of the snapshot plus the viewer identity.
func ViewerStateOf(courtCase *models.Case, uid string) ViewerState {
	if courtCase.PendingObjection() {
		return StateObjectionOpen
	}
	if courtCase.Verdict != nil {
		return StateAdjudicated
	}

	switch courtCase.RoleOf(uid) {
	case "A":
		if !courtCase.SideA.Submitted {
			return StateAwaitingStatement
		}
		if !courtCase.SideB.Submitted {
			return StateAwaitingOpponent
		}
		return StateReadyForVerdict
	case "B":
		if !courtCase.SideB.Submitted {
			return StateAwaitingStatement
		}
		if !courtCase.SideA.Submitted {
			return StateAwaitingOpponent
		}
		return StateReadyForVerdict
	}

	if !courtCase.SideA.Claimed() || !courtCase.SideB.Claimed() {
		return StateAwaitingRole
	}
	if courtCase.BothSubmitted() {
		return StateReadyForVerdict
	}
	return StateObserver
}
