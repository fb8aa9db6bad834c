package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/mypublisher"
	"github.com/P0RTNOY/IronMind/lib/mystore"
	"github.com/P0RTNOY/IronMind/lib/mytime"
	"github.com/P0RTNOY/IronMind/services/accessoracle"
	"github.com/P0RTNOY/IronMind/services/checkoutcontext"
	"github.com/P0RTNOY/IronMind/services/checkoutevents"
	"github.com/P0RTNOY/IronMind/services/contentgate"
	"github.com/P0RTNOY/IronMind/services/ironapi"
	"github.com/P0RTNOY/IronMind/services/toast"
)

const sessionUID = "sess-1"

var (
	course1 = ironapi.Course{ID: "course-1", Title: "Handstand basics", Published: true}
	course2 = ironapi.Course{ID: "course-2", Title: "Unreleased", Published: false}
	lesson1 = ironapi.Lesson{ID: "lesson-1", CourseID: "course-1", Title: "Wrist warmup", VideoID: "vid-1", Published: true}
	plan1   = ironapi.Plan{ID: "plan-1", CourseID: "course-1", Title: "8 week plan", PDFPath: "plans/p1.pdf", Published: true}
)

func TestCatalogPages(t *testing.T) {

	t.Run("Home lists only published courses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().ListCourses(gomock.Any()).Return([]ironapi.Course{course1, course2}, nil)

		// when
		response := f.get(t, "/")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Handstand basics")
		assert.NotContains(t, got, "Unreleased")
	})

	t.Run("Course page offers purchase when access is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().GetCourse(gomock.Any(), "course-1").Return(course1, nil)
		f.catalogAPI.EXPECT().ListLessons(gomock.Any(), "course-1").Return([]ironapi.Lesson{lesson1}, nil)
		f.catalogAPI.EXPECT().ListPlans(gomock.Any(), "course-1").Return([]ironapi.Plan{plan1}, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.CourseRef("course-1")).
			Return(accessoracle.Result{State: accessoracle.StateDenied}, nil)

		// when
		response := f.get(t, "/courses/course-1")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Buy this course")
		assert.Contains(t, got, "/lessons/lesson-1")
	})

	t.Run("Purchase stores context and redirects to provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.checkoutAPI.EXPECT().CreateCheckoutSession(gomock.Any(), ironapi.ScopeCourse, "course-1",
			"http://example.com/checkout/success?session_id={CHECKOUT_SESSION_ID}", "http://example.com/checkout/cancel").
			Return(ironapi.CheckoutSession{RedirectURL: "https://pay.example/cs_123", IntentID: "intent-1"}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.CheckoutStarted{
			IntentUID: "intent-1",
			CourseUID: "course-1",
			Scope:     ironapi.ScopeCourse,
		}).Return(nil)

		// when
		response := f.post(t, "/courses/course-1/purchase")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "https://pay.example/cs_123", response.Header().Get("Location"))

		checkout, found, err := f.checkouts.Load(context.TODO(), sessionUID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "course-1", checkout.CourseID)
		assert.Equal(t, "intent-1", checkout.IntentID)
		assert.Equal(t, ironapi.ScopeCourse, checkout.Scope)
		assert.Equal(t, mytime.ExampleTime.UnixMilli(), checkout.StartedAt)
	})

	t.Run("Purchase without session redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// when: no session cookie
		request := httptest.NewRequest(http.MethodPost, "/courses/course-1/purchase", nil)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/login?next=/courses/course-1/purchase", response.Header().Get("Location"))
	})

	t.Run("Membership purchase stores membership scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.checkoutAPI.EXPECT().CreateCheckoutSession(gomock.Any(), ironapi.ScopeMembership, "",
			gomock.Any(), gomock.Any()).
			Return(ironapi.CheckoutSession{RedirectURL: "https://pay.example/cs_456", IntentID: "intent-2"}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(nil)

		// when
		response := f.post(t, "/membership/purchase")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)

		checkout, found, err := f.checkouts.Load(context.TODO(), sessionUID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ironapi.ScopeMembership, checkout.Scope)
		assert.Equal(t, "", checkout.CourseID)
	})

	t.Run("Lesson page embeds playback when unlocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().GetLesson(gomock.Any(), "lesson-1").Return(lesson1, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.LessonRef("lesson-1")).
			Return(accessoracle.Result{State: accessoracle.StateAllowed, ContentURL: "https://player.vimeo.com/video/1"}, nil)

		// when
		response := f.get(t, "/lessons/lesson-1")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "https://player.vimeo.com/video/1")
	})

	t.Run("Lesson page shows locked notice when denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().GetLesson(gomock.Any(), "lesson-1").Return(lesson1, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.LessonRef("lesson-1")).
			Return(accessoracle.Result{State: accessoracle.StateDenied}, nil)

		// when
		response := f.get(t, "/lessons/lesson-1")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Purchase the course to unlock it")
	})

	t.Run("Lesson without media is locked for lack of content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given: allowed, but nothing behind the lesson
		bareLesson := ironapi.Lesson{ID: "lesson-2", CourseID: "course-1", Title: "Coming soon", Published: true}
		f.catalogAPI.EXPECT().GetLesson(gomock.Any(), "lesson-2").Return(bareLesson, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.LessonRef("lesson-2")).
			Return(accessoracle.Result{State: accessoracle.StateAllowed}, nil)

		// when
		response := f.get(t, "/lessons/lesson-2")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "not available yet")
	})

	t.Run("Lesson page redirects to login when unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().GetLesson(gomock.Any(), "lesson-1").Return(lesson1, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.LessonRef("lesson-1")).
			Return(accessoracle.Result{State: accessoracle.StateUnauthenticated}, nil)

		// when
		response := f.get(t, "/lessons/lesson-1")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/login?next=/lessons/lesson-1", response.Header().Get("Location"))
	})

	t.Run("Plan download hands the browser the signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().GetPlan(gomock.Any(), "plan-1").Return(plan1, nil)
		f.oracle.EXPECT().Check(gomock.Any(), accessoracle.PlanRef("plan-1")).
			Return(accessoracle.Result{State: accessoracle.StateAllowed, ContentURL: "https://storage.example/signed"}, nil)

		// when
		response := f.get(t, "/plans/plan-1/download")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "https://storage.example/signed", response.Header().Get("Location"))
	})

	t.Run("Library shows owned courses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).
			Return(ironapi.AccessSummary{EntitledCourseIDs: []string{"course-1"}}, nil)
		f.catalogAPI.EXPECT().ListCourses(gomock.Any()).Return([]ironapi.Course{course1, course2}, nil)

		// when
		response := f.get(t, "/library")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Handstand basics")
		assert.NotContains(t, got, "Unreleased")
		assert.Contains(t, got, "Get a membership")
	})

	t.Run("Profile shows membership and purchases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(ironapi.AccessSummary{
			UID:                 "u-1",
			Email:               "athlete@example.com",
			MembershipActive:    true,
			MembershipExpiresAt: "2026-12-31",
			EntitledCourseIDs:   []string{"course-1"},
		}, nil)

		// when
		response := f.get(t, "/me")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "athlete@example.com")
		assert.Contains(t, got, "until 2026-12-31")
		assert.Contains(t, got, `href="/courses/course-1"`)
	})

	t.Run("Profile redirects to login when unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).
			Return(ironapi.AccessSummary{}, myerrors.NewUnauthenticatedError(io.EOF))

		// when
		response := f.get(t, "/me")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/login?next=/me", response.Header().Get("Location"))
	})

	t.Run("Search renders matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.catalogAPI.EXPECT().Search(gomock.Any(), "handstand").
			Return(ironapi.SearchResult{Courses: []ironapi.Course{course1}}, nil)

		// when
		response := f.get(t, "/search?q=handstand")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Handstand basics")
	})
}

type fixture struct {
	router      *mux.Router
	catalogAPI  *ironapi.MockCatalogAPI
	checkoutAPI *ironapi.MockCheckoutAPI
	accessAPI   *ironapi.MockAccessAPI
	oracle      *accessoracle.MockOracle
	checkouts   checkoutcontext.Store
	publisher   *mypublisher.MockPublisher
}

func setup(t *testing.T, ctrl *gomock.Controller) *fixture {
	c := context.TODO()

	slots, slotsCleanup, err := mystore.NewInMemoryStore[checkoutcontext.Slot](c)
	assert.NoError(t, err)
	t.Cleanup(slotsCleanup)

	queues, queuesCleanup, err := mystore.NewInMemoryStore[toast.Queue](c)
	assert.NoError(t, err)
	t.Cleanup(queuesCleanup)

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	f := &fixture{
		catalogAPI:  ironapi.NewMockCatalogAPI(ctrl),
		checkoutAPI: ironapi.NewMockCheckoutAPI(ctrl),
		accessAPI:   ironapi.NewMockAccessAPI(ctrl),
		oracle:      accessoracle.NewMockOracle(ctrl),
		checkouts:   checkoutcontext.NewStore(slots, nower, 30*time.Minute),
		publisher:   mypublisher.NewMockPublisher(ctrl),
	}
	f.publisher.EXPECT().CreateTopic(gomock.Any(), checkoutevents.TopicName).Return(nil)

	sut := NewWebService(f.catalogAPI, f.checkoutAPI, f.accessAPI, f.oracle, contentgate.New(false),
		f.checkouts, toast.NewBus(queues), f.publisher, nower)
	f.router = mux.NewRouter()
	assert.NoError(t, sut.RegisterEndpoints(c, f.router))

	return f
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.AddCookie(&http.Cookie{Name: mycontext.SessionCookieName(), Value: sessionUID})
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func (f *fixture) post(t *testing.T, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, nil)
	request.AddCookie(&http.Cookie{Name: mycontext.SessionCookieName(), Value: sessionUID})
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}
