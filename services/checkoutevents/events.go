package checkoutevents

import (
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// Checkout lifecycle events emitted by this frontend for analytics. The
// frontend only publishes: consumption happens in backend services.

const (
	TopicName             = "checkout"
	checkoutStartedName   = TopicName + ".started"
	checkoutCompletedName = TopicName + ".completed"
	checkoutAbandonedName = TopicName + ".abandoned"
)

type CheckoutStarted struct {
	IntentUID string
	CourseUID string
	Scope     ironapi.Scope
}

func (e CheckoutStarted) GetEventTypeName() string {
	return checkoutStartedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.IntentUID
}

type CheckoutOutcome string

const (
	CheckoutOutcomeSucceeded CheckoutOutcome = "succeeded"
	CheckoutOutcomeFailed    CheckoutOutcome = "failed"
	CheckoutOutcomeTimedOut  CheckoutOutcome = "timed_out"
)

type CheckoutCompleted struct {
	IntentUID string
	CourseUID string
	Scope     ironapi.Scope
	Outcome   CheckoutOutcome
	Details   string
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.IntentUID
}

type CheckoutAbandoned struct {
	IntentUID string
	CourseUID string
	Scope     ironapi.Scope
}

func (e CheckoutAbandoned) GetEventTypeName() string {
	return checkoutAbandonedName
}

func (e CheckoutAbandoned) GetAggregateName() string {
	return e.IntentUID
}
