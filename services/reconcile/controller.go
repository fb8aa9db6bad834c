package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mytime"
	"github.com/P0RTNOY/IronMind/services/accessoracle"
	"github.com/P0RTNOY/IronMind/services/checkoutcontext"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// Controller reconciles the three signals of "did the purchase go through" -
// the provider redirect parameter, the locally remembered payment intent and
// the live access state - into one outcome, polling with a bounded budget.
type Controller struct {
	checkouts   checkoutcontext.Store
	checkoutAPI ironapi.CheckoutAPI
	oracle      accessoracle.Oracle
	sleeper     mytime.Sleeper
	logger      mylog.Logger
	interval    time.Duration
	maxAttempts int
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewController(checkouts checkoutcontext.Store, checkoutAPI ironapi.CheckoutAPI, oracle accessoracle.Oracle,
	sleeper mytime.Sleeper, interval time.Duration, maxAttempts int) *Controller {
	return &Controller{
		checkouts:   checkouts,
		checkoutAPI: checkoutAPI,
		oracle:      oracle,
		sleeper:     sleeper,
		logger:      mylog.New("reconcile"),
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Outcome is what the hosting page renders. Cancelled means the client went
// away mid-run: State then holds the last state reached and nothing should
// be rendered or published.
type Outcome struct {
	State     State
	Cancelled bool
	CourseUID string
	Scope     ironapi.Scope
	IntentUID string
	Message   string
	Attempts  int
}

// run is the mutable state of one reconciliation. Every mutation goes
// through apply, which refuses to act once the context is done: a response
// arriving after the client navigated away must not change anything.
type run struct {
	state      State
	cancelled  bool
	sessionUID string
	courseUID  string
	scope      ironapi.Scope
	intentUID  string
	message    string
	attempts   int
	skipSleep  bool
}

func (r *run) apply(c context.Context, event Event) bool {
	if c.Err() != nil {
		r.cancelled = true
		return false
	}
	r.state = Transition(r.state, event)
	return true
}

func (r *run) outcome() Outcome {
	return Outcome{
		State:     r.state,
		Cancelled: r.cancelled,
		CourseUID: r.courseUID,
		Scope:     r.scope,
		IntentUID: r.intentUID,
		Message:   r.message,
		Attempts:  r.attempts,
	}
}

// Run reconciles one post-checkout page view. The context doubles as the
// cancellation token of the hosting request. providerSessionUID is the
// provider redirect parameter, empty when the provider did not carry one.
func (rc *Controller) Run(c context.Context, sessionUID string, providerSessionUID string) Outcome {
	r := &run{
		state:      StateInitializing,
		sessionUID: sessionUID,
		scope:      ironapi.ScopeCourse,
	}

	checkout, found, err := rc.checkouts.Load(c, sessionUID)
	if err != nil {
		rc.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error loading checkout context: %s", err)
		found = false
	}
	if found {
		r.courseUID = checkout.CourseID
		r.scope = checkout.Scope
		r.intentUID = checkout.IntentID
	}

	switch {
	case providerSessionUID != "":
		if !r.apply(c, EventProviderSessionSeen) {
			return r.outcome()
		}
		rc.verifySession(c, r, providerSessionUID)
		if r.state == StatePollingAccess {
			rc.poll(c, r)
		}
	case found && r.intentUID != "":
		if !r.apply(c, EventIntentContextSeen) {
			return r.outcome()
		}
		rc.poll(c, r)
	case found:
		if !r.apply(c, EventContextSeen) {
			return r.outcome()
		}
		rc.poll(c, r)
	default:
		if !r.apply(c, EventNothingToReconcile) {
			return r.outcome()
		}
		r.message = "No checkout session found"
	}

	rc.logger.Log(c, sessionUID, mylog.SeverityInfo, "Reconciliation finished in state %s after %d attempts", r.state, r.attempts)

	return r.outcome()
}

// verifySession issues exactly one verification call. This path never
// retries: a non-paid definitive status or a failing call is final.
func (rc *Controller) verifySession(c context.Context, r *run, providerSessionUID string) {
	verification, err := rc.checkoutAPI.VerifyCheckoutSession(c, providerSessionUID)
	if err != nil {
		if !r.apply(c, EventVerificationFailed) {
			return
		}
		r.message = "Could not verify the checkout session"
		rc.clearContext(c, r)
		return
	}

	if verification.PaymentStatus != ironapi.PaymentStatusPaid {
		if !r.apply(c, EventSessionUnpaid) {
			return
		}
		r.message = fmt.Sprintf("Payment not completed (status %q)", verification.PaymentStatus)
		rc.clearContext(c, r)
		return
	}

	if verification.CourseID != "" {
		r.courseUID = verification.CourseID
	}

	// Paid without anything to check access on: done.
	if r.courseUID == "" && r.scope != ironapi.ScopeMembership {
		if !r.apply(c, EventSessionSettled) {
			return
		}
		rc.clearContext(c, r)
		return
	}

	r.apply(c, EventSessionPaid)
}

// poll drives polling_intent and polling_access under one shared attempt
// budget. The interval runs from the completion of one attempt to the start
// of the next, so slow responses throttle the rate instead of stacking.
func (rc *Controller) poll(c context.Context, r *run) {
	for r.attempts < rc.maxAttempts {
		if r.attempts > 0 && !r.skipSleep {
			err := rc.sleeper.Sleep(c, rc.interval)
			if err != nil {
				r.cancelled = true
				return
			}
		}
		r.skipSleep = false

		switch r.state {
		case StatePollingIntent:
			rc.pollIntentOnce(c, r)
		case StatePollingAccess:
			rc.pollAccessOnce(c, r)
		default:
			return
		}

		if r.cancelled || r.state.Terminal() {
			return
		}
	}

	if !r.apply(c, EventBudgetExhausted) {
		return
	}
	r.message = "Your payment is still being processed. Check back shortly."
}

func (rc *Controller) pollIntentOnce(c context.Context, r *run) {
	r.attempts++

	intent, err := rc.checkoutAPI.GetPaymentIntent(c, r.intentUID)
	if err != nil {
		if c.Err() != nil {
			r.cancelled = true
			return
		}
		if myerrors.IsUnauthenticated(err) {
			if !r.apply(c, EventAuthExpired) {
				return
			}
			r.message = "Your session expired. Log in again to see your purchase."
			rc.clearContext(c, r)
			return
		}
		// A transient transport failure consumes one attempt and keeps polling.
		rc.logger.Log(c, r.sessionUID, mylog.SeverityWarn, "Error polling intent %s: %s", r.intentUID, err)
		return
	}

	switch intent.Status {
	case ironapi.IntentSucceeded:
		if !r.apply(c, EventIntentSucceeded) {
			return
		}
		// Clear right away so a later unrelated page visit cannot pick up
		// this context, then check access in the same step.
		rc.clearContext(c, r)
		r.skipSleep = true
	case ironapi.IntentFailed:
		if !r.apply(c, EventIntentFailed) {
			return
		}
		r.message = "Payment failed"
		rc.clearContext(c, r)
	default:
		// Unknown statuses count as pending: keep polling.
		r.apply(c, EventIntentPending)
	}
}

func (rc *Controller) pollAccessOnce(c context.Context, r *run) {
	r.attempts++

	result, err := rc.oracle.Check(c, r.accessRef())
	if err != nil {
		if c.Err() != nil {
			r.cancelled = true
			return
		}
		rc.logger.Log(c, r.sessionUID, mylog.SeverityWarn, "Error polling access: %s", err)
		return
	}

	switch result.State {
	case accessoracle.StateAllowed:
		if !r.apply(c, EventAccessAllowed) {
			return
		}
		rc.clearContext(c, r)
	case accessoracle.StateUnauthenticated:
		if !r.apply(c, EventAuthExpired) {
			return
		}
		r.message = "Your session expired. Log in again to see your purchase."
		rc.clearContext(c, r)
	default:
		r.apply(c, EventAccessPending)
	}
}

func (r *run) accessRef() accessoracle.Ref {
	if r.scope == ironapi.ScopeMembership {
		return accessoracle.MembershipRef()
	}
	return accessoracle.CourseRef(r.courseUID)
}

func (rc *Controller) clearContext(c context.Context, r *run) {
	err := rc.checkouts.Clear(c, r.sessionUID)
	if err != nil {
		rc.logger.Log(c, r.sessionUID, mylog.SeverityWarn, "Error clearing checkout context: %s", err)
	}
}
