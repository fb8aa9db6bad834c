package checkoutcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/P0RTNOY/IronMind/lib/mystore"
	"github.com/P0RTNOY/IronMind/lib/mytime"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

const (
	sessionUID = "sess-1"
	ttl        = 30 * time.Minute
)

func TestStore(t *testing.T) {

	t.Run("Load without save returns none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower := setupStore(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// when
		_, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Save then load round-trips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower := setupStore(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// given
		checkout := CheckoutContext{
			CourseID:  "course-1",
			Scope:     ironapi.ScopeCourse,
			IntentID:  "intent-1",
			StartedAt: mytime.ExampleTime.UnixMilli(),
		}
		assert.NoError(t, sut.Save(c, sessionUID, checkout))

		// when
		got, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, checkout, got)
	})

	t.Run("Last write wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower := setupStore(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// given
		first := CheckoutContext{CourseID: "course-1", Scope: ironapi.ScopeCourse, StartedAt: mytime.ExampleTime.UnixMilli()}
		second := CheckoutContext{Scope: ironapi.ScopeMembership, IntentID: "intent-2", StartedAt: mytime.ExampleTime.UnixMilli()}
		assert.NoError(t, sut.Save(c, sessionUID, first))
		assert.NoError(t, sut.Save(c, sessionUID, second))

		// when
		got, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, second, got)
	})

	t.Run("Expired context is discarded and stays gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower := setupStore(t, ctrl)

		// given: stored 31 minutes before "now"
		startedAt := mytime.ExampleTime.Add(-31 * time.Minute)
		assert.NoError(t, sut.Save(c, sessionUID, CheckoutContext{
			CourseID:  "course-1",
			Scope:     ironapi.ScopeCourse,
			StartedAt: startedAt.UnixMilli(),
		}))
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// when
		_, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.False(t, found)

		// and expiry is idempotent: a second load is also none
		_, found, err = sut.Load(c, sessionUID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Context just inside the TTL survives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, nower := setupStore(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// given
		startedAt := mytime.ExampleTime.Add(-29 * time.Minute)
		assert.NoError(t, sut.Save(c, sessionUID, CheckoutContext{
			Scope:     ironapi.ScopeMembership,
			StartedAt: startedAt.UnixMilli(),
		}))

		// when
		_, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Corrupt slot is treated as none and cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, slots, nower := setupStore(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

		// given
		assert.NoError(t, slots.Put(c, sessionUID, Slot{Payload: "{not json"}))

		// when
		_, found, err := sut.Load(c, sessionUID)

		// then
		assert.NoError(t, err)
		assert.False(t, found)

		// and the slot was cleared, not left to fail again
		_, exists, err := slots.Get(c, sessionUID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear when nothing stored is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, _, _ := setupStore(t, ctrl)

		// when / then
		assert.NoError(t, sut.Clear(c, sessionUID))
	})
}

func setupStore(t *testing.T, ctrl *gomock.Controller) (context.Context, Store, mystore.Store[Slot], *mytime.MockNower) {
	c := context.TODO()
	slots, _, err := mystore.NewInMemoryStore[Slot](c)
	assert.NoError(t, err)
	nower := mytime.NewMockNower(ctrl)

	return c, NewStore(slots, nower, ttl), slots, nower
}
