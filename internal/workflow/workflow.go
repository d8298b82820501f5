package workflow

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

// Estados compartidos por los tres tipos de solicitud.
const (
	StatusPending  = "PENDING"
	StatusInReview = "IN_REVIEW"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Kind identifies which request type a transition table applies to.
type Kind string

const (
	KindPermission Kind = "permission"
	KindShiftSwap  Kind = "shift_swap"
	KindSeverance  Kind = "severance"
)

// Action names the operation an actor performs against a request.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"

	// Visto bueno del empleado reemplazante (solo cambio de turno).
	ActionSignOffApprove Action = "sign_off_approve"
	ActionSignOffReject  Action = "sign_off_reject"

	// Decisión del jefe de área tras el visto bueno.
	ActionHeadApprove Action = "head_approve"
	ActionHeadReject  Action = "head_reject"
)

// Transition describes the outcome of an action and the confirmatory
// input the actor must supply before it may run.
type Transition struct {
	To          string
	NeedsReason bool
	NeedsAmount bool
}

var ErrIllegalTransition = apperror.New(
	apperror.CodeInvalidState,
	"la acción no es válida para el estado actual de la solicitud",
	http.StatusBadRequest,
)

var rules = map[Kind]map[string]map[Action]Transition{
	KindPermission: {
		StatusPending: {
			ActionApprove: {To: StatusApproved},
			ActionReject:  {To: StatusRejected, NeedsReason: true},
		},
	},
	KindShiftSwap: {
		StatusPending: {
			ActionSignOffApprove: {To: StatusInReview},
			ActionSignOffReject:  {To: StatusRejected, NeedsReason: true},
		},
		StatusInReview: {
			ActionHeadApprove: {To: StatusApproved},
			ActionHeadReject:  {To: StatusRejected, NeedsReason: true},
		},
	},
	KindSeverance: {
		StatusPending: {
			ActionApprove: {To: StatusApproved, NeedsAmount: true},
			ActionReject:  {To: StatusRejected, NeedsReason: true},
		},
	},
}

// Next resolves the transition for (kind, from, action). Undefined pairs,
// including any action on a terminal state, return ErrIllegalTransition.
func Next(kind Kind, from string, action Action) (Transition, error) {
	byState, ok := rules[kind]
	if !ok {
		return Transition{}, ErrIllegalTransition
	}
	byAction, ok := byState[from]
	if !ok {
		return Transition{}, ErrIllegalTransition
	}
	tr, ok := byAction[action]
	if !ok {
		return Transition{}, ErrIllegalTransition
	}
	return tr, nil
}

// IsTerminal reports whether a state admits no further transition.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// Actions lists the actions defined for a request in its current state,
// in no particular order.
func Actions(kind Kind, from string) []Action {
	byAction, ok := rules[kind][from]
	if !ok {
		return nil
	}
	actions := make([]Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	return actions
}
