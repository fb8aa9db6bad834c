package admin

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttp"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/services/ironapi"
	"github.com/P0RTNOY/IronMind/services/toast"
	"github.com/P0RTNOY/IronMind/services/uploader"
)

const maxUploadSize = 64 << 20

// webService is the admin console: thin forms over the admin API plus the
// sign-then-PUT media upload. The API enforces authorization; the console
// only checks the admin flag to keep non-admins out of the screens.
type webService struct {
	adminAPI   ironapi.AdminAPI
	catalogAPI ironapi.CatalogAPI
	accessAPI  ironapi.AccessAPI
	uploads    uploader.Uploader
	toasts     toast.Bus
	decoder    *form.Decoder
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(adminAPI ironapi.AdminAPI, catalogAPI ironapi.CatalogAPI, accessAPI ironapi.AccessAPI,
	uploads uploader.Uploader, toasts toast.Bus) *webService {
	return &webService{
		adminAPI:   adminAPI,
		catalogAPI: catalogAPI,
		accessAPI:  accessAPI,
		uploads:    uploads,
		toasts:     toasts,
		decoder:    form.NewDecoder(),
		logger:     mylog.New("admin"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/admin", s.redirectToCourses()).Methods("GET")

	router.HandleFunc("/admin/courses", s.coursesPage()).Methods("GET")
	router.HandleFunc("/admin/courses", s.saveCourse()).Methods("POST")
	router.HandleFunc("/admin/courses/{id}/delete", s.deleteCourse()).Methods("POST")

	router.HandleFunc("/admin/courses/{id}/lessons", s.lessonsPage()).Methods("GET")
	router.HandleFunc("/admin/lessons", s.saveLesson()).Methods("POST")
	router.HandleFunc("/admin/lessons/{id}/delete", s.deleteLesson()).Methods("POST")

	router.HandleFunc("/admin/courses/{id}/plans", s.plansPage()).Methods("GET")
	router.HandleFunc("/admin/plans", s.savePlan()).Methods("POST")
	router.HandleFunc("/admin/plans/{id}/delete", s.deletePlan()).Methods("POST")

	router.HandleFunc("/admin/payments", s.paymentsPage()).Methods("GET")
	router.HandleFunc("/admin/payments/replay", s.replayWebhook()).Methods("POST")

	router.HandleFunc("/admin/activity", s.activityPage()).Methods("GET")

	router.HandleFunc("/admin/users", s.usersPage()).Methods("GET")
	router.HandleFunc("/admin/users/{uid}", s.userPage()).Methods("GET")
	router.HandleFunc("/admin/users/{uid}/grant", s.grantAccess()).Methods("POST")
	router.HandleFunc("/admin/users/{uid}/revoke", s.revokeAccess()).Methods("POST")
}

//go:embed templates
var templateFolder embed.FS
var (
	coursesPageTemplate  *template.Template
	lessonsPageTemplate  *template.Template
	plansPageTemplate    *template.Template
	usersPageTemplate    *template.Template
	userPageTemplate     *template.Template
	paymentsPageTemplate *template.Template
	activityPageTemplate *template.Template
)

func init() {
	coursesPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/courses.html"))
	lessonsPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/lessons.html"))
	plansPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/plans.html"))
	usersPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/users.html"))
	userPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/user.html"))
	paymentsPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/payments.html"))
	activityPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/activity.html"))
}

// requireAdmin resolves the caller's access summary and rejects non-admins.
func (s *webService) requireAdmin(c context.Context, w http.ResponseWriter, r *http.Request) bool {
	responseWriter := myhttp.NewWriter(s.logger)

	summary, err := s.accessAPI.GetAccessSummary(c)
	if err != nil {
		if myerrors.IsUnauthenticated(err) {
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return false
		}
		responseWriter.WriteError(c, w, 1, err)
		return false
	}
	if !summary.IsAdmin {
		responseWriter.WriteError(c, w, 2, myerrors.NewForbiddenError(fmt.Errorf("admin only")))
		return false
	}

	return true
}

func (s *webService) redirectToCourses() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
	}
}

// Courses

func (s *webService) coursesPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		courses, err := s.catalogAPI.ListCourses(c)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.WritePage(c, w, coursesPageTemplate, struct {
			Courses []ironapi.Course
			Toasts  []toast.Toast
		}{
			Courses: courses,
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

type courseForm struct {
	ID          string `form:"id"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Type        string `form:"type"`
	Published   bool   `form:"published"`
}

func (s *webService) saveCourse() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			responseWriter.WriteError(c, w, 4, myerrors.NewInvalidInputError(err))
			return
		}

		input := courseForm{}
		err = s.decoder.Decode(&input, r.MultipartForm.Value)
		if err != nil {
			responseWriter.WriteError(c, w, 5, myerrors.NewInvalidInputError(err))
			return
		}

		course := ironapi.Course{
			ID:          input.ID,
			Title:       input.Title,
			Description: input.Description,
			Type:        ironapi.CourseType(input.Type),
			Published:   input.Published,
		}

		sign, uploaded, err := s.uploadIfPresent(c, r, "cover", "course_cover")
		if err != nil {
			responseWriter.WriteError(c, w, 6, err)
			return
		}
		if uploaded {
			course.CoverImageURL = sign.PublicURL
		}

		saved, err := s.adminAPI.SaveCourse(c, course)
		if err != nil {
			responseWriter.WriteError(c, w, 7, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelSuccess, Message: fmt.Sprintf("Course %s saved", saved.Title)})
		http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
	}
}

func (s *webService) deleteCourse() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		courseUID := mux.Vars(r)["id"]

		err := s.adminAPI.DeleteCourse(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 8, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelInfo, Message: "Course deleted"})
		http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
	}
}

// Lessons

func (s *webService) lessonsPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		courseUID := mux.Vars(r)["id"]

		lessons, err := s.catalogAPI.ListLessons(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 9, err)
			return
		}

		responseWriter.WritePage(c, w, lessonsPageTemplate, struct {
			CourseUID string
			Lessons   []ironapi.Lesson
			Toasts    []toast.Toast
		}{
			CourseUID: courseUID,
			Lessons:   lessons,
			Toasts:    s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

type lessonForm struct {
	ID               string `form:"id"`
	CourseID         string `form:"courseId"`
	Title            string `form:"title"`
	Description      string `form:"description"`
	MovementCategory string `form:"movementCategory"`
	VideoID          string `form:"videoId"`
	OrderIndex       int    `form:"orderIndex"`
	Published        bool   `form:"published"`
}

func (s *webService) saveLesson() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 10, myerrors.NewInvalidInputError(err))
			return
		}

		input := lessonForm{}
		err = s.decoder.Decode(&input, r.PostForm)
		if err != nil {
			responseWriter.WriteError(c, w, 11, myerrors.NewInvalidInputError(err))
			return
		}

		saved, err := s.adminAPI.SaveLesson(c, ironapi.Lesson{
			ID:               input.ID,
			CourseID:         input.CourseID,
			Title:            input.Title,
			Description:      input.Description,
			MovementCategory: input.MovementCategory,
			VideoID:          input.VideoID,
			OrderIndex:       input.OrderIndex,
			Published:        input.Published,
		})
		if err != nil {
			responseWriter.WriteError(c, w, 12, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelSuccess, Message: fmt.Sprintf("Lesson %s saved", saved.Title)})
		http.Redirect(w, r, "/admin/courses/"+saved.CourseID+"/lessons", http.StatusSeeOther)
	}
}

func (s *webService) deleteLesson() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := s.adminAPI.DeleteLesson(c, mux.Vars(r)["id"])
		if err != nil {
			responseWriter.WriteError(c, w, 13, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelInfo, Message: "Lesson deleted"})
		http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
	}
}

// Plans

func (s *webService) plansPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		courseUID := mux.Vars(r)["id"]

		plans, err := s.catalogAPI.ListPlans(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 14, err)
			return
		}

		responseWriter.WritePage(c, w, plansPageTemplate, struct {
			CourseUID string
			Plans     []ironapi.Plan
			Toasts    []toast.Toast
		}{
			CourseUID: courseUID,
			Plans:     plans,
			Toasts:    s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

type planForm struct {
	ID          string `form:"id"`
	CourseID    string `form:"courseId"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Published   bool   `form:"published"`
}

func (s *webService) savePlan() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			responseWriter.WriteError(c, w, 15, myerrors.NewInvalidInputError(err))
			return
		}

		input := planForm{}
		err = s.decoder.Decode(&input, r.MultipartForm.Value)
		if err != nil {
			responseWriter.WriteError(c, w, 16, myerrors.NewInvalidInputError(err))
			return
		}

		plan := ironapi.Plan{
			ID:          input.ID,
			CourseID:    input.CourseID,
			Title:       input.Title,
			Description: input.Description,
			Published:   input.Published,
		}

		sign, uploaded, err := s.uploadIfPresent(c, r, "pdf", "plan_pdf")
		if err != nil {
			responseWriter.WriteError(c, w, 17, err)
			return
		}
		if uploaded {
			plan.PDFPath = sign.ObjectPath
		}

		saved, err := s.adminAPI.SavePlan(c, plan)
		if err != nil {
			responseWriter.WriteError(c, w, 18, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelSuccess, Message: fmt.Sprintf("Plan %s saved", saved.Title)})
		http.Redirect(w, r, "/admin/courses/"+saved.CourseID+"/plans", http.StatusSeeOther)
	}
}

func (s *webService) deletePlan() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := s.adminAPI.DeletePlan(c, mux.Vars(r)["id"])
		if err != nil {
			responseWriter.WriteError(c, w, 19, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelInfo, Message: "Plan deleted"})
		http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
	}
}

// Payments

const maxReplayPayload = 50 << 10
const feedLimit = 50

// defaultReplayHeaders matches what the stub provider sends, so the form
// works out of the box against a dev backend.
const defaultReplayHeaders = `{"hash": "replay"}`

type paymentsPageData struct {
	Events  []ironapi.PaymentEvent
	Result  *ironapi.WebhookReplayResult
	Payload string
	Headers string
	Toasts  []toast.Toast
}

func (s *webService) paymentsPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		events, err := s.adminAPI.ListPaymentEvents(c, feedLimit)
		if err != nil {
			responseWriter.WriteError(c, w, 25, err)
			return
		}

		responseWriter.WritePage(c, w, paymentsPageTemplate, paymentsPageData{
			Events:  events,
			Headers: defaultReplayHeaders,
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

func (s *webService) replayWebhook() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 26, myerrors.NewInvalidInputError(err))
			return
		}

		provider := r.FormValue("provider")
		if provider != "payplus" && provider != "stub" {
			responseWriter.WriteError(c, w, 27, myerrors.NewInvalidInputError(fmt.Errorf("unsupported provider %q", provider)))
			return
		}

		payload := r.FormValue("payload")
		if len(payload) > maxReplayPayload {
			responseWriter.WriteError(c, w, 28, myerrors.NewInvalidInputError(fmt.Errorf("payload exceeds %d bytes", maxReplayPayload)))
			return
		}
		if !json.Valid([]byte(payload)) {
			responseWriter.WriteError(c, w, 29, myerrors.NewInvalidInputError(fmt.Errorf("payload is not valid json")))
			return
		}

		headersJSON := r.FormValue("headers")
		headers := map[string]string{}
		if headersJSON != "" {
			err = json.Unmarshal([]byte(headersJSON), &headers)
			if err != nil {
				responseWriter.WriteError(c, w, 30, myerrors.NewInvalidInputError(fmt.Errorf("headers is not a json object of strings: %s", err)))
				return
			}
		}

		result, err := s.adminAPI.ReplayWebhook(c, ironapi.WebhookReplay{
			Provider:     provider,
			Payload:      json.RawMessage(payload),
			Headers:      headers,
			ForceLogOnly: r.FormValue("forceLogOnly") != "",
		})
		if err != nil {
			responseWriter.WriteError(c, w, 31, err)
			return
		}

		// The replay typically lands a new event, so fetch a fresh listing.
		events, err := s.adminAPI.ListPaymentEvents(c, feedLimit)
		if err != nil {
			responseWriter.WriteError(c, w, 32, err)
			return
		}

		responseWriter.WritePage(c, w, paymentsPageTemplate, paymentsPageData{
			Events:  events,
			Result:  &result,
			Payload: payload,
			Headers: headersJSON,
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

// Activity

func (s *webService) activityPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		events, err := s.adminAPI.ListActivity(c, feedLimit)
		if err != nil {
			responseWriter.WriteError(c, w, 33, err)
			return
		}

		responseWriter.WritePage(c, w, activityPageTemplate, struct {
			Events []ironapi.ActivityEvent
		}{
			Events: events,
		})
	}
}

// Users

func (s *webService) usersPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		users, err := s.adminAPI.ListUsers(c)
		if err != nil {
			responseWriter.WriteError(c, w, 20, err)
			return
		}

		responseWriter.WritePage(c, w, usersPageTemplate, struct {
			Users []ironapi.UserSummary
		}{
			Users: users,
		})
	}
}

func (s *webService) userPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		uid := mux.Vars(r)["uid"]

		detail, err := s.adminAPI.GetUser(c, uid)
		if err != nil {
			responseWriter.WriteError(c, w, 21, err)
			return
		}

		courses, err := s.catalogAPI.ListCourses(c)
		if err != nil {
			responseWriter.WriteError(c, w, 22, err)
			return
		}

		responseWriter.WritePage(c, w, userPageTemplate, struct {
			Detail  ironapi.UserDetail
			Courses []ironapi.Course
			Toasts  []toast.Toast
		}{
			Detail:  detail,
			Courses: courses,
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

func (s *webService) grantAccess() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		uid := mux.Vars(r)["uid"]
		kind := r.FormValue("kind")
		courseUID := r.FormValue("courseId")

		err := s.adminAPI.GrantAccess(c, uid, kind, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 23, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelSuccess, Message: "Access granted"})
		http.Redirect(w, r, "/admin/users/"+uid, http.StatusSeeOther)
	}
}

func (s *webService) revokeAccess() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		if !s.requireAdmin(c, w, r) {
			return
		}

		uid := mux.Vars(r)["uid"]
		entitlementUID := r.FormValue("entitlementId")

		err := s.adminAPI.RevokeAccess(c, uid, entitlementUID)
		if err != nil {
			responseWriter.WriteError(c, w, 24, err)
			return
		}

		s.toasts.Push(c, mycontext.SessionToken(c), toast.Toast{Level: toast.LevelInfo, Message: "Access revoked"})
		http.Redirect(w, r, "/admin/users/"+uid, http.StatusSeeOther)
	}
}

// uploadIfPresent uploads the named multipart file when the form carries
// one. An absent file is not an error: edits without a new file keep the
// existing media.
func (s *webService) uploadIfPresent(c context.Context, r *http.Request, field string, kind string) (ironapi.UploadSign, bool, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return ironapi.UploadSign{}, false, nil
	}
	if err != nil {
		return ironapi.UploadSign{}, false, myerrors.NewInvalidInputError(err)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return ironapi.UploadSign{}, false, myerrors.NewInvalidInputError(err)
	}

	sign, err := s.uploads.Upload(c, kind, header.Filename, header.Header.Get("Content-Type"), payload)
	if err != nil {
		return ironapi.UploadSign{}, false, err
	}

	return sign, true, nil
}
