package checkoutcontext

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mystore"
	"github.com/P0RTNOY/IronMind/lib/mytime"
)

// Store keeps at most one checkout context per browser session,
// last-write-wins. Expiry is enforced lazily on Load, never by a timer.
type Store interface {
	Save(c context.Context, sessionUID string, checkout CheckoutContext) error
	Load(c context.Context, sessionUID string) (CheckoutContext, bool, error)
	Clear(c context.Context, sessionUID string) error
}

type slotStore struct {
	slots  mystore.Store[Slot]
	nower  mytime.Nower
	logger mylog.Logger
	ttl    time.Duration
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewStore(slots mystore.Store[Slot], nower mytime.Nower, ttl time.Duration) Store {
	return &slotStore{
		slots:  slots,
		nower:  nower,
		logger: mylog.New("checkoutcontext"),
		ttl:    ttl,
	}
}

func (s *slotStore) Save(c context.Context, sessionUID string, checkout CheckoutContext) error {
	payload, err := json.Marshal(checkout)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error marshalling checkout context: %s", err))
	}

	err = s.slots.Put(c, sessionUID, Slot{Payload: string(payload)})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing checkout context for session %s: %s", sessionUID, err))
	}

	return nil
}

// Load returns the context for the session if one is present, parseable and
// not older than the TTL. A corrupt or expired slot is deleted on the spot
// and reported as absence, never as an error.
func (s *slotStore) Load(c context.Context, sessionUID string) (CheckoutContext, bool, error) {
	slot, found, err := s.slots.Get(c, sessionUID)
	if err != nil {
		return CheckoutContext{}, false, myerrors.NewInternalError(fmt.Errorf("error fetching checkout context for session %s: %s", sessionUID, err))
	}
	if !found {
		return CheckoutContext{}, false, nil
	}

	checkout := CheckoutContext{}
	err = json.Unmarshal([]byte(slot.Payload), &checkout)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Discarding corrupt checkout context: %s", err)
		s.discard(c, sessionUID)
		return CheckoutContext{}, false, nil
	}

	age := s.nower.Now().Sub(checkout.StartedAtTime())
	if age > s.ttl {
		s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Discarding stale checkout context (age %s)", age)
		s.discard(c, sessionUID)
		return CheckoutContext{}, false, nil
	}

	return checkout, true, nil
}

func (s *slotStore) Clear(c context.Context, sessionUID string) error {
	err := s.slots.Delete(c, sessionUID)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error clearing checkout context for session %s: %s", sessionUID, err))
	}

	return nil
}

func (s *slotStore) discard(c context.Context, sessionUID string) {
	err := s.slots.Delete(c, sessionUID)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error deleting unusable checkout context: %s", err)
	}
}
