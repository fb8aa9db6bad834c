package ironapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttpclient"
)

func TestClient(t *testing.T) {

	t.Run("Get course decodes payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "http://api.test/v1/courses/course-1", gomock.Any(), gomock.Any()).
			Return(200, []byte(`{"id":"course-1","titleHe":"כוח בסיסי","type":"one_time","published":true}`), nil)

		// when
		course, err := client.GetCourse(c, "course-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "course-1", course.ID)
		assert.Equal(t, CourseTypeOneTime, course.Type)
		assert.True(t, course.Published)
	})

	t.Run("Login decodes the session and its user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "http://api.test/v1/auth/login", gomock.Any(),
			[]byte(`{"email":"a@example.com","password":"secret"}`)).
			Return(200, []byte(`{"token":"token-123","user":{"uid":"u-1","email":"a@example.com","membershipActive":true}}`), nil)

		// when
		session, err := client.Login(c, "a@example.com", "secret")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "token-123", session.Token)
		assert.Equal(t, "u-1", session.User.UID)
		assert.True(t, session.User.MembershipActive)
	})

	t.Run("Session token travels as bearer header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)
		c = mycontext.WithSessionToken(c, "token-123")

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "http://api.test/v1/access/me",
			map[string]string{"Authorization": "Bearer token-123"}, gomock.Any()).
			Return(200, []byte(`{"uid":"user-1","membershipActive":true,"entitledCourseIds":[]}`), nil)

		// when
		summary, err := client.GetAccessSummary(c)

		// then
		assert.NoError(t, err)
		assert.True(t, summary.MembershipActive)
	})

	t.Run("Upstream 401 becomes unauthenticated error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(401, []byte(`{"detail":"Not authenticated"}`), nil)

		// when
		_, err := client.GetLessonPlayback(c, "lesson-1")

		// then
		assert.Error(t, err)
		assert.Equal(t, 401, myerrors.GetHTTPStatus(err))
		assert.True(t, myerrors.IsUnauthenticated(err))
		assert.Contains(t, err.Error(), "Not authenticated")
	})

	t.Run("Upstream 403 keeps its status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(403, []byte(`{"detail":"Access denied"}`), nil)

		// when
		_, err := client.CheckCourseAccess(c, "course-1")

		// then
		assert.Equal(t, 403, myerrors.GetHTTPStatus(err))
	})

	t.Run("Transport failure becomes unavailable error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, []byte{}, fmt.Errorf("connection refused"))

		// when
		_, err := client.GetPaymentIntent(c, "intent-1")

		// then
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})

	t.Run("Create checkout session maps scope to wire kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "http://api.test/v1/checkout/session", gomock.Any(),
			[]byte(`{"type":"one_time","courseId":"course-1","successUrl":"http://front.test/checkout/success?session_id={CHECKOUT_SESSION_ID}","cancelUrl":"http://front.test/checkout/cancel"}`)).
			Return(200, []byte(`{"url":"https://pay.example/cs_123","intentId":"intent-1"}`), nil)

		// when
		session, err := client.CreateCheckoutSession(c, ScopeCourse, "course-1",
			"http://front.test/checkout/success?session_id={CHECKOUT_SESSION_ID}", "http://front.test/checkout/cancel")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "https://pay.example/cs_123", session.RedirectURL)
		assert.Equal(t, "intent-1", session.IntentID)
	})

	t.Run("Membership checkout has no course id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, client, sender := setup(ctrl)

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "http://api.test/v1/checkout/session", gomock.Any(),
			[]byte(`{"type":"subscription","successUrl":"http://front.test/checkout/success?session_id={CHECKOUT_SESSION_ID}","cancelUrl":"http://front.test/checkout/cancel"}`)).
			Return(200, []byte(`{"url":"https://pay.example/cs_456"}`), nil)

		// when
		session, err := client.CreateCheckoutSession(c, ScopeMembership, "",
			"http://front.test/checkout/success?session_id={CHECKOUT_SESSION_ID}", "http://front.test/checkout/cancel")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "", session.IntentID)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, *Client, *myhttpclient.MockHTTPSender) {
	c := context.TODO()
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	client := NewClient("http://api.test/v1", sender)

	return c, client, sender
}
