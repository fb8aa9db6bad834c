package reconcile

// State is the post-checkout reconciliation state machine. A page view owns
// exactly one instance for its lifetime.
type State int

const (
	StateInitializing State = iota
	StateVerifyingSession
	StatePollingIntent
	StatePollingAccess
	StateSucceeded
	StateFailed
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateVerifyingSession:
		return "verifying_session"
	case StatePollingIntent:
		return "polling_intent"
	case StatePollingAccess:
		return "polling_access"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Terminal reports whether no further transitions may be applied.
// TimedOut is terminal for this page view but not a failure: a later visit
// starts over at StateInitializing with a fresh budget.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateTimedOut
}

type Event int

const (
	// initializing
	EventProviderSessionSeen Event = iota
	EventIntentContextSeen
	EventContextSeen
	EventNothingToReconcile

	// verifying_session
	EventSessionPaid
	EventSessionSettled
	EventSessionUnpaid
	EventVerificationFailed

	// polling_intent
	EventIntentPending
	EventIntentSucceeded
	EventIntentFailed

	// polling (both phases)
	EventAccessAllowed
	EventAccessPending
	EventAuthExpired
	EventBudgetExhausted
)

// Transition is the single place where state changes are decided. Events
// that make no sense in the current state leave it unchanged; terminal
// states absorb everything.
func Transition(s State, e Event) State {
	if s.Terminal() {
		return s
	}

	switch s {
	case StateInitializing:
		switch e {
		case EventProviderSessionSeen:
			return StateVerifyingSession
		case EventIntentContextSeen:
			return StatePollingIntent
		case EventContextSeen:
			return StatePollingAccess
		case EventNothingToReconcile:
			return StateFailed
		}
	case StateVerifyingSession:
		switch e {
		case EventSessionPaid:
			return StatePollingAccess
		case EventSessionSettled:
			return StateSucceeded
		case EventSessionUnpaid, EventVerificationFailed:
			return StateFailed
		}
	case StatePollingIntent:
		switch e {
		case EventIntentPending:
			return StatePollingIntent
		case EventIntentSucceeded:
			return StatePollingAccess
		case EventIntentFailed, EventAuthExpired:
			return StateFailed
		case EventBudgetExhausted:
			return StateTimedOut
		}
	case StatePollingAccess:
		switch e {
		case EventAccessPending:
			return StatePollingAccess
		case EventAccessAllowed:
			return StateSucceeded
		case EventAuthExpired:
			return StateFailed
		case EventBudgetExhausted:
			return StateTimedOut
		}
	}

	return s
}
