package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/mystore"
	"github.com/P0RTNOY/IronMind/services/ironapi"
	"github.com/P0RTNOY/IronMind/services/toast"
	"github.com/P0RTNOY/IronMind/services/uploader"
)

const sessionUID = "sess-admin"

var (
	adminSummary = ironapi.AccessSummary{UID: "u-1", Email: "admin@example.com", IsAdmin: true}
	plainSummary = ironapi.AccessSummary{UID: "u-2", Email: "user@example.com"}
)

func TestAdminConsole(t *testing.T) {

	t.Run("Non-admin is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(plainSummary, nil)

		// when
		response := f.get(t, "/admin/courses")

		// then
		assert.Equal(t, http.StatusForbidden, response.Code)
	})

	t.Run("Anonymous visitor is sent to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).
			Return(ironapi.AccessSummary{}, myerrors.NewUnauthenticatedError(io.EOF))

		// when
		response := f.get(t, "/admin/courses")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/login?next=/admin/courses", response.Header().Get("Location"))
	})

	t.Run("Courses page lists everything including unpublished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.catalogAPI.EXPECT().ListCourses(gomock.Any()).Return([]ironapi.Course{
			{ID: "course-1", Title: "Handstand basics", Published: true},
			{ID: "course-2", Title: "Unreleased", Published: false},
		}, nil)

		// when
		response := f.get(t, "/admin/courses")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "Handstand basics")
		assert.Contains(t, got, "Unreleased")
	})

	t.Run("Save lesson decodes the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().SaveLesson(gomock.Any(), ironapi.Lesson{
			CourseID:   "course-1",
			Title:      "Wrist warmup",
			VideoID:    "vid-1",
			OrderIndex: 3,
			Published:  true,
		}).Return(ironapi.Lesson{ID: "lesson-1", CourseID: "course-1", Title: "Wrist warmup"}, nil)

		// when
		response := f.postForm(t, "/admin/lessons", url.Values{
			"courseId":   {"course-1"},
			"title":      {"Wrist warmup"},
			"videoId":    {"vid-1"},
			"orderIndex": {"3"},
			"published":  {"true"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/admin/courses/course-1/lessons", response.Header().Get("Location"))
	})

	t.Run("Save plan uploads the pdf first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.uploads.EXPECT().Upload(gomock.Any(), "plan_pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes")).
			Return(ironapi.UploadSign{ObjectPath: "plans/plan.pdf"}, nil)
		f.adminAPI.EXPECT().SavePlan(gomock.Any(), ironapi.Plan{
			CourseID: "course-1",
			Title:    "8 week plan",
			PDFPath:  "plans/plan.pdf",
		}).Return(ironapi.Plan{ID: "plan-1", CourseID: "course-1", Title: "8 week plan"}, nil)

		// when
		body, contentType := multipartForm(t, map[string]string{
			"courseId": "course-1",
			"title":    "8 week plan",
		}, "pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes"))
		response := f.postMultipart(t, "/admin/plans", body, contentType)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/admin/courses/course-1/plans", response.Header().Get("Location"))
	})

	t.Run("Save plan without a new pdf keeps going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given: no Upload expected
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().SavePlan(gomock.Any(), ironapi.Plan{
			CourseID: "course-1",
			Title:    "8 week plan",
		}).Return(ironapi.Plan{ID: "plan-1", CourseID: "course-1"}, nil)

		// when
		body, contentType := multipartForm(t, map[string]string{
			"courseId": "course-1",
			"title":    "8 week plan",
		}, "", "", "", nil)
		response := f.postMultipart(t, "/admin/plans", body, contentType)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
	})

	t.Run("Failed upload aborts the save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given: no SavePlan expected
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.uploads.EXPECT().Upload(gomock.Any(), "plan_pdf", "plan.pdf", "application/pdf", gomock.Any()).
			Return(ironapi.UploadSign{}, myerrors.NewUnavailableError(io.ErrUnexpectedEOF))

		// when
		body, contentType := multipartForm(t, map[string]string{
			"courseId": "course-1",
			"title":    "8 week plan",
		}, "pdf", "plan.pdf", "application/pdf", []byte("pdf-bytes"))
		response := f.postMultipart(t, "/admin/plans", body, contentType)

		// then
		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	})

	t.Run("Payments page lists recent events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().ListPaymentEvents(gomock.Any(), 50).Return([]ironapi.PaymentEvent{
			{ID: "evt-1", Provider: "payplus", Type: "payment.captured", ProviderRef: "pp-123", VerifyMode: "hash"},
			{ID: "evt-2", Provider: "stub", Type: "unknown", Unmapped: true},
		}, nil)

		// when
		response := f.get(t, "/admin/payments")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "payment.captured")
		assert.Contains(t, got, "pp-123")
	})

	t.Run("Replay pushes the payload through the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().ReplayWebhook(gomock.Any(), ironapi.WebhookReplay{
			Provider:     "payplus",
			Payload:      json.RawMessage(`{"transaction":{"uid":"txn-1"}}`),
			Headers:      map[string]string{"hash": "replay"},
			ForceLogOnly: true,
		}).Return(ironapi.WebhookReplayResult{
			OK:          true,
			Provider:    "payplus",
			EventType:   "payment.captured",
			ProviderRef: "pp-123",
			IntentFound: true,
			IntentID:    "intent-1",
		}, nil)
		f.adminAPI.EXPECT().ListPaymentEvents(gomock.Any(), 50).Return([]ironapi.PaymentEvent{}, nil)

		// when
		response := f.postForm(t, "/admin/payments/replay", url.Values{
			"provider":     {"payplus"},
			"payload":      {`{"transaction":{"uid":"txn-1"}}`},
			"headers":      {`{"hash": "replay"}`},
			"forceLogOnly": {"true"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "payment.captured")
		assert.Contains(t, got, "intent-1")
	})

	t.Run("Replay rejects a broken payload before calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given: no ReplayWebhook expected
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)

		// when
		response := f.postForm(t, "/admin/payments/replay", url.Values{
			"provider": {"payplus"},
			"payload":  {`{"transaction":`},
		})

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Replay rejects an unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given: no ReplayWebhook expected
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)

		// when
		response := f.postForm(t, "/admin/payments/replay", url.Values{
			"provider": {"paypal"},
			"payload":  {`{}`},
		})

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Activity page lists the feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().ListActivity(gomock.Any(), 50).Return([]ironapi.ActivityEvent{
			{ID: "act-1", Type: "lesson.watched", UID: "u-2", CourseID: "course-1", LessonID: "lesson-1"},
			{ID: "act-2", Type: "plan.downloaded", UID: "u-3", CourseID: "course-1", PlanID: "plan-1"},
		}, nil)

		// when
		response := f.get(t, "/admin/activity")

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "lesson.watched")
		assert.Contains(t, got, "plan.downloaded")
	})

	t.Run("Grant access posts to the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().GrantAccess(gomock.Any(), "u-2", "course", "course-1").Return(nil)

		// when
		response := f.postForm(t, "/admin/users/u-2/grant", url.Values{
			"kind":     {"course"},
			"courseId": {"course-1"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/admin/users/u-2", response.Header().Get("Location"))
	})

	t.Run("Revoke access posts to the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.accessAPI.EXPECT().GetAccessSummary(gomock.Any()).Return(adminSummary, nil)
		f.adminAPI.EXPECT().RevokeAccess(gomock.Any(), "u-2", "ent-1").Return(nil)

		// when
		response := f.postForm(t, "/admin/users/u-2/revoke", url.Values{
			"entitlementId": {"ent-1"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
	})
}

type fixture struct {
	router     *mux.Router
	adminAPI   *ironapi.MockAdminAPI
	catalogAPI *ironapi.MockCatalogAPI
	accessAPI  *ironapi.MockAccessAPI
	uploads    *uploader.MockUploader
}

func setup(t *testing.T, ctrl *gomock.Controller) *fixture {
	c := context.TODO()

	queues, cleanup, err := mystore.NewInMemoryStore[toast.Queue](c)
	assert.NoError(t, err)
	t.Cleanup(cleanup)

	f := &fixture{
		adminAPI:   ironapi.NewMockAdminAPI(ctrl),
		catalogAPI: ironapi.NewMockCatalogAPI(ctrl),
		accessAPI:  ironapi.NewMockAccessAPI(ctrl),
		uploads:    uploader.NewMockUploader(ctrl),
	}

	sut := NewWebService(f.adminAPI, f.catalogAPI, f.accessAPI, f.uploads, toast.NewBus(queues))
	f.router = mux.NewRouter()
	sut.RegisterEndpoints(c, f.router)

	return f
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.AddCookie(&http.Cookie{Name: mycontext.SessionCookieName(), Value: sessionUID})
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func (f *fixture) postForm(t *testing.T, path string, values url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.AddCookie(&http.Cookie{Name: mycontext.SessionCookieName(), Value: sessionUID})
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func (f *fixture) postMultipart(t *testing.T, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, body)
	request.Header.Set("Content-Type", contentType)
	request.AddCookie(&http.Cookie{Name: mycontext.SessionCookieName(), Value: sessionUID})
	response := httptest.NewRecorder()
	f.router.ServeHTTP(response, request)
	return response
}

func multipartForm(t *testing.T, fields map[string]string, fileField string, filename string, fileType string, payload []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		assert.NoError(t, writer.WriteField(name, value))
	}

	if fileField != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="` + fileField + `"; filename="` + filename + `"`}
		header["Content-Type"] = []string{fileType}
		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(payload)
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
