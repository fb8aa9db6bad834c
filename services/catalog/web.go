package catalog

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttp"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mypublisher"
	"github.com/P0RTNOY/IronMind/lib/mytime"
	"github.com/P0RTNOY/IronMind/services/accessoracle"
	"github.com/P0RTNOY/IronMind/services/checkoutcontext"
	"github.com/P0RTNOY/IronMind/services/checkoutevents"
	"github.com/P0RTNOY/IronMind/services/contentgate"
	"github.com/P0RTNOY/IronMind/services/ironapi"
	"github.com/P0RTNOY/IronMind/services/toast"
)

// webService serves the public catalog: browsing, gated playback/download
// and purchase initiation. Purchases are initiated here, resolved on the
// checkout pages.
type webService struct {
	catalogAPI  ironapi.CatalogAPI
	checkoutAPI ironapi.CheckoutAPI
	accessAPI   ironapi.AccessAPI
	oracle      accessoracle.Oracle
	gate        *contentgate.Gate
	checkouts   checkoutcontext.Store
	toasts      toast.Bus
	publisher   mypublisher.Publisher
	nower       mytime.Nower
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(catalogAPI ironapi.CatalogAPI, checkoutAPI ironapi.CheckoutAPI, accessAPI ironapi.AccessAPI,
	oracle accessoracle.Oracle, gate *contentgate.Gate, checkouts checkoutcontext.Store, toasts toast.Bus,
	pub mypublisher.Publisher, nower mytime.Nower) *webService {
	return &webService{
		catalogAPI:  catalogAPI,
		checkoutAPI: checkoutAPI,
		accessAPI:   accessAPI,
		oracle:      oracle,
		gate:        gate,
		checkouts:   checkouts,
		toasts:      toasts,
		publisher:   pub,
		nower:       nower,
		logger:      mylog.New("catalog"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.homePage()).Methods("GET")
	router.HandleFunc("/courses/{id}", s.coursePage()).Methods("GET")
	router.HandleFunc("/courses/{id}/purchase", s.purchaseCourse()).Methods("POST")
	router.HandleFunc("/membership/purchase", s.purchaseMembership()).Methods("POST")
	router.HandleFunc("/lessons/{id}", s.lessonPage()).Methods("GET")
	router.HandleFunc("/plans/{id}/download", s.planDownload()).Methods("GET")
	router.HandleFunc("/library", s.libraryPage()).Methods("GET")
	router.HandleFunc("/me", s.profilePage()).Methods("GET")
	router.HandleFunc("/search", s.searchPage()).Methods("GET")

	return s.Subscribe(c)
}

func (s *webService) Subscribe(c context.Context) error {
	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	homePageTemplate    *template.Template
	coursePageTemplate  *template.Template
	lessonPageTemplate  *template.Template
	lockedPageTemplate  *template.Template
	libraryPageTemplate *template.Template
	profilePageTemplate *template.Template
	searchPageTemplate  *template.Template
)

func init() {
	homePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/home.html"))
	coursePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/course.html"))
	lessonPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/lesson.html"))
	lockedPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/locked.html"))
	libraryPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/library.html"))
	profilePageTemplate = template.Must(template.ParseFS(templateFolder, "templates/me.html"))
	searchPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/search.html"))
}

func (s *webService) homePage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		courses, err := s.catalogAPI.ListCourses(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.WritePage(c, w, homePageTemplate, struct {
			Courses []ironapi.Course
			Toasts  []toast.Toast
		}{
			Courses: published(courses),
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

type coursePage struct {
	Course   ironapi.Course
	Lessons  []ironapi.Lesson
	Plans    []ironapi.Plan
	Decision contentgate.Decision
	Toasts   []toast.Toast
}

func (s *webService) coursePage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		courseUID := mux.Vars(r)["id"]

		course, err := s.catalogAPI.GetCourse(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		lessons, err := s.catalogAPI.ListLessons(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		plans, err := s.catalogAPI.ListPlans(c, courseUID)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		result, err := s.oracle.Check(c, accessoracle.CourseRef(courseUID))
		if err != nil {
			responseWriter.WriteError(c, w, 5, err)
			return
		}

		responseWriter.WritePage(c, w, coursePageTemplate, coursePage{
			Course:   course,
			Lessons:  lessons,
			Plans:    plans,
			Decision: s.gate.Decide(result.State, true),
			Toasts:   s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

func (s *webService) purchaseCourse() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.startCheckout(c, w, r, ironapi.ScopeCourse, mux.Vars(r)["id"])
	}
}

func (s *webService) purchaseMembership() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.startCheckout(c, w, r, ironapi.ScopeMembership, "")
	}
}

// startCheckout persists the checkout context before following the provider
// redirect, so the success page can reconcile even when the provider drops
// its redirect parameter.
func (s *webService) startCheckout(c context.Context, w http.ResponseWriter, r *http.Request, scope ironapi.Scope, courseUID string) {
	responseWriter := myhttp.NewWriter(s.logger)

	sessionUID := mycontext.SessionToken(c)
	if sessionUID == "" {
		http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
		return
	}

	// The provider substitutes its own session id into the placeholder when
	// redirecting back.
	hostname := myhttp.HostnameWithScheme(r)
	session, err := s.checkoutAPI.CreateCheckoutSession(c, scope, courseUID,
		hostname+"/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		hostname+"/checkout/cancel")
	if err != nil {
		responseWriter.WriteError(c, w, 6, err)
		return
	}

	err = s.checkouts.Save(c, sessionUID, checkoutcontext.CheckoutContext{
		CourseID:  courseUID,
		Scope:     scope,
		IntentID:  session.IntentID,
		StartedAt: s.nower.Now().UnixMilli(),
	})
	if err != nil {
		responseWriter.WriteError(c, w, 7, err)
		return
	}

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutStarted{
		IntentUID: session.IntentID,
		CourseUID: courseUID,
		Scope:     scope,
	})
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error publishing checkout-started event: %s", err)
	}

	http.Redirect(w, r, session.RedirectURL, http.StatusSeeOther)
}

type lessonPage struct {
	Lesson   ironapi.Lesson
	EmbedURL string
	Decision contentgate.Decision
}

func (s *webService) lessonPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		lessonUID := mux.Vars(r)["id"]

		lesson, err := s.catalogAPI.GetLesson(c, lessonUID)
		if err != nil {
			responseWriter.WriteError(c, w, 8, err)
			return
		}

		result, err := s.oracle.Check(c, accessoracle.LessonRef(lessonUID))
		if err != nil {
			responseWriter.WriteError(c, w, 9, err)
			return
		}

		decision := s.gate.Decide(result.State, lesson.HasMedia())
		switch decision.Verdict {
		case contentgate.VerdictRequiresLogin:
			http.Redirect(w, r, decision.NavigateTo+"?next="+r.URL.Path, http.StatusSeeOther)
		case contentgate.VerdictLocked:
			responseWriter.WritePage(c, w, lockedPageTemplate, lockedPage{
				Title:    lesson.Title,
				BackPath: "/courses/" + lesson.CourseID,
				Decision: decision,
			})
		default:
			responseWriter.WritePage(c, w, lessonPageTemplate, lessonPage{
				Lesson:   lesson,
				EmbedURL: result.ContentURL,
				Decision: decision,
			})
		}
	}
}

type lockedPage struct {
	Title    string
	BackPath string
	Decision contentgate.Decision
}

func (s *webService) planDownload() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		planUID := mux.Vars(r)["id"]

		plan, err := s.catalogAPI.GetPlan(c, planUID)
		if err != nil {
			responseWriter.WriteError(c, w, 10, err)
			return
		}

		result, err := s.oracle.Check(c, accessoracle.PlanRef(planUID))
		if err != nil {
			responseWriter.WriteError(c, w, 11, err)
			return
		}

		decision := s.gate.Decide(result.State, plan.HasMedia())
		switch decision.Verdict {
		case contentgate.VerdictRequiresLogin:
			http.Redirect(w, r, decision.NavigateTo+"?next="+r.URL.Path, http.StatusSeeOther)
		case contentgate.VerdictLocked:
			responseWriter.WritePage(c, w, lockedPageTemplate, lockedPage{
				Title:    plan.Title,
				BackPath: "/courses/" + plan.CourseID,
				Decision: decision,
			})
		default:
			// The signed URL is short-lived: hand the browser straight over.
			http.Redirect(w, r, result.ContentURL, http.StatusSeeOther)
		}
	}
}

type libraryPage struct {
	Summary ironapi.AccessSummary
	Courses []ironapi.Course
	Toasts  []toast.Toast
}

func (s *webService) libraryPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		summary, err := s.accessAPI.GetAccessSummary(c)
		if err != nil {
			if myerrors.IsUnauthenticated(err) {
				http.Redirect(w, r, "/login?next=/library", http.StatusSeeOther)
				return
			}
			responseWriter.WriteError(c, w, 12, err)
			return
		}

		courses, err := s.catalogAPI.ListCourses(c)
		if err != nil {
			responseWriter.WriteError(c, w, 13, err)
			return
		}

		responseWriter.WritePage(c, w, libraryPageTemplate, libraryPage{
			Summary: summary,
			Courses: entitled(courses, summary),
			Toasts:  s.toasts.Drain(c, mycontext.SessionToken(c)),
		})
	}
}

func (s *webService) profilePage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		summary, err := s.accessAPI.GetAccessSummary(c)
		if err != nil {
			if myerrors.IsUnauthenticated(err) {
				http.Redirect(w, r, "/login?next=/me", http.StatusSeeOther)
				return
			}
			responseWriter.WriteError(c, w, 15, err)
			return
		}

		responseWriter.WritePage(c, w, profilePageTemplate, struct {
			Summary ironapi.AccessSummary
		}{
			Summary: summary,
		})
	}
}

func (s *webService) searchPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := r.URL.Query().Get("q")

		result := ironapi.SearchResult{}
		if query != "" {
			var err error
			result, err = s.catalogAPI.Search(c, query)
			if err != nil {
				responseWriter.WriteError(c, w, 14, err)
				return
			}
		}

		responseWriter.WritePage(c, w, searchPageTemplate, struct {
			Query  string
			Result ironapi.SearchResult
		}{
			Query:  query,
			Result: result,
		})
	}
}

func published(courses []ironapi.Course) []ironapi.Course {
	kept := []ironapi.Course{}
	for _, course := range courses {
		if course.Published {
			kept = append(kept, course)
		}
	}
	return kept
}

// entitled keeps the courses the user owns outright, or all published
// courses for an active membership.
func entitled(courses []ironapi.Course, summary ironapi.AccessSummary) []ironapi.Course {
	owned := map[string]bool{}
	for _, uid := range summary.EntitledCourseIDs {
		owned[uid] = true
	}

	kept := []ironapi.Course{}
	for _, course := range courses {
		if owned[course.ID] || (summary.MembershipActive && course.Published) {
			kept = append(kept, course)
		}
	}
	return kept
}
