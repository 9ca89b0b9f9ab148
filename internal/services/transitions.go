package services

import (
	"errors"
	"fmt"

	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

// Action is a lifecycle action a user can trigger on a document.
type Action string

const (
	// ActionSubmit saves the document and sends it for approval.
	ActionSubmit Action = "submit"
	// ActionSetPending is the purchase-request spelling of submit.
	ActionSetPending Action = "setPending"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	// ActionReset returns a rejected purchase order to draft.
	ActionReset Action = "reset"
)

// ErrNoTransition is returned when the (status, action) pair has no entry in
// the transition table for the document kind.
var ErrNoTransition = errors.New("no such status transition")

// Transition describes how one lifecycle step reaches the backend: the status
// it leaves behind, the status it produces, the endpoint suffix appended to
// the document URL ("" means a plain PATCH of the document itself) and
// whether the pre-submit gate must pass first.
type Transition struct {
	From     models.Status
	To       models.Status
	Endpoint string
	Validate bool
}

type transitionKey struct {
	from   models.Status
	action Action
}

var transitions = map[transitionKey]Transition{
	{models.StatusDraft, ActionSubmit}:      {From: models.StatusDraft, To: models.StatusSubmitted, Validate: true},
	{models.StatusDraft, ActionSetPending}:  {From: models.StatusDraft, To: models.StatusSubmitted, Validate: true},
	{models.StatusSubmitted, ActionApprove}: {From: models.StatusSubmitted, To: models.StatusApproved, Endpoint: "approve/"},
	{models.StatusSubmitted, ActionReject}:  {From: models.StatusSubmitted, To: models.StatusRejected, Endpoint: "reject/"},
	{models.StatusRejected, ActionReset}:    {From: models.StatusRejected, To: models.StatusDraft},
}

// TransitionFor selects the transition for (document kind, current status,
// action). It only checks table membership; which actions are offered for a
// given status is the caller's concern.
func TransitionFor(dt models.DocType, from models.Status, action Action) (Transition, error) {
	t, ok := transitions[transitionKey{from, action}]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %s from %q", ErrNoTransition, action, from)
	}
	if action == ActionReset && dt != models.DocPurchaseOrder {
		return Transition{}, fmt.Errorf("%w: only purchase orders can be reset to draft", ErrNoTransition)
	}
	return t, nil
}
