package inquiry

// Allowed status transitions per inquiry kind. Terminal states have no
// outgoing edges; any request against them is an illegal transition, so a
// stored approved/rejected status can never change.
var cashTransitions = map[Status][]Status{
	StatusNew:                 {StatusReferred, StatusInProgress, StatusRejected},
	StatusReferred:            {StatusInProgress, StatusRejected},
	StatusInProgress:          {StatusAwaitingDownPayment, StatusRejected},
	StatusAwaitingDownPayment: {StatusDownPaymentReceived, StatusRejected},
	StatusDownPaymentReceived: {StatusMeetingScheduled, StatusRejected},
	StatusMeetingScheduled:    {StatusApproved, StatusRejected},
	StatusApproved:            {},
	StatusRejected:            {},
}

var installmentTransitions = map[Status][]Status{
	StatusPending:       {StatusFailed, StatusUserConfirmed},
	StatusFailed:        {StatusPending},
	StatusUserConfirmed: {StatusApproved, StatusRejected, StatusMoreDocs},
	StatusMoreDocs:      {StatusApproved, StatusRejected},
	StatusApproved:      {},
	StatusRejected:      {},
}

func transitionTable(kind Kind) map[Status][]Status {
	if kind == KindInstallment {
		return installmentTransitions
	}
	return cashTransitions
}

// CanTransition reports whether the (from, to) edge is legal for the kind.
func CanTransition(kind Kind, from, to Status) bool {
	targets, ok := transitionTable(kind)[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether the status belongs to the kind's lifecycle at all.
func ValidStatus(kind Kind, s Status) bool {
	_, ok := transitionTable(kind)[s]
	return ok
}
