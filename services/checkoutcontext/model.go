package checkoutcontext

import (
	"time"

	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// CheckoutContext is the ephemeral record of an in-flight purchase attempt,
// written just before the browser is sent to the payment provider and read
// back when it returns. StartedAt is epoch milliseconds.
type CheckoutContext struct {
	CourseID  string        `json:"courseId,omitempty"`
	Scope     ironapi.Scope `json:"scope"`
	IntentID  string        `json:"intentId,omitempty"`
	StartedAt int64         `json:"startedAt"`
}

func (cc CheckoutContext) StartedAtTime() time.Time {
	return time.UnixMilli(cc.StartedAt)
}

// Slot is the stored shape: one serialized context per browser session.
// Keeping the payload opaque means a corrupt write is representable and can
// be handled at read time instead of poisoning the slot forever.
type Slot struct {
	Payload string `datastore:",noindex"`
}
