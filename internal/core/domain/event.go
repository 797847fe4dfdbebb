package domain

import "time"

type EventKind string

const (
	EventTransfer EventKind = "transfer"
	EventApproval EventKind = "approval"
	EventOperator EventKind = "operator_approval"
)

// Event is a notification emitted after a successful mutation, consumed
// by the audit trail. Fields are populated per kind: From/To for
// transfers, Owner/Delegate for approvals, Owner/Operator/Approved for
// operator changes.
type Event struct {
	Kind     EventKind
	ItemID   ItemID
	From     Account
	To       Account
	Owner    Account
	Delegate Account
	Operator Account
	Approved bool
	At       time.Time
}

func NewTransferEvent(from, to Account, itemID ItemID) Event {
	return Event{Kind: EventTransfer, ItemID: itemID, From: from, To: to, At: time.Now()}
}

func NewApprovalEvent(owner, delegate Account, itemID ItemID) Event {
	return Event{Kind: EventApproval, ItemID: itemID, Owner: owner, Delegate: delegate, At: time.Now()}
}

func NewOperatorEvent(owner, operator Account, approved bool) Event {
	return Event{Kind: EventOperator, Owner: owner, Operator: operator, Approved: approved, At: time.Now()}
}
