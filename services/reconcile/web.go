package reconcile

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myhttp"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/lib/mypublisher"
	"github.com/P0RTNOY/IronMind/services/checkoutcontext"
	"github.com/P0RTNOY/IronMind/services/checkoutevents"
)

type webService struct {
	controller *Controller
	checkouts  checkoutcontext.Store
	publisher  mypublisher.Publisher
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(controller *Controller, checkouts checkoutcontext.Store, pub mypublisher.Publisher) *webService {
	return &webService{
		controller: controller,
		checkouts:  checkouts,
		publisher:  pub,
		logger:     mylog.New("reconcileWeb"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/checkout/success", s.successPage()).Methods("GET")
	router.HandleFunc("/checkout/cancel", s.cancelPage()).Methods("GET")

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
	successPageTemplate *template.Template
	cancelPageTemplate  *template.Template
)

func init() {
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
	cancelPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cancel.html"))
}

func (s *webService) successPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		sessionUID := mycontext.SessionToken(c)
		providerSessionUID := r.URL.Query().Get("session_id")

		outcome := s.controller.Run(c, sessionUID, providerSessionUID)
		if outcome.Cancelled {
			// The client went away mid-run: nobody is reading the response.
			s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Reconciliation cancelled in state %s", outcome.State)
			return
		}

		s.publishOutcome(c, outcome)

		responseWriter.WritePage(c, w, successPageTemplate, outcomePage(outcome))
	}
}

func (s *webService) cancelPage() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		sessionUID := mycontext.SessionToken(c)

		// Clear unconditionally: this page may be reached from a checkout a
		// different page initiated, or with nothing stored at all.
		checkout, found, err := s.checkouts.Load(c, sessionUID)
		if err != nil {
			s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error loading checkout context: %s", err)
		}
		err = s.checkouts.Clear(c, sessionUID)
		if err != nil {
			s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error clearing checkout context: %s", err)
		}

		if found {
			err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutAbandoned{
				IntentUID: checkout.IntentID,
				CourseUID: checkout.CourseID,
				Scope:     checkout.Scope,
			})
			if err != nil {
				s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error publishing abandon event: %s", err)
			}
		}

		responseWriter.WritePage(c, w, cancelPageTemplate, nil)
	}
}

func (s *webService) publishOutcome(c context.Context, outcome Outcome) {
	var eventOutcome checkoutevents.CheckoutOutcome
	switch outcome.State {
	case StateSucceeded:
		eventOutcome = checkoutevents.CheckoutOutcomeSucceeded
	case StateFailed:
		eventOutcome = checkoutevents.CheckoutOutcomeFailed
	case StateTimedOut:
		eventOutcome = checkoutevents.CheckoutOutcomeTimedOut
	default:
		return
	}

	err := s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
		IntentUID: outcome.IntentUID,
		CourseUID: outcome.CourseUID,
		Scope:     outcome.Scope,
		Outcome:   eventOutcome,
		Details:   outcome.Message,
	})
	if err != nil {
		s.logger.Log(c, outcome.IntentUID, mylog.SeverityWarn, "Error publishing outcome event: %s", err)
	}
}

type page struct {
	State     string
	Succeeded bool
	Failed    bool
	TimedOut  bool
	CourseUID string
	Message   string
}

func outcomePage(outcome Outcome) page {
	return page{
		State:     outcome.State.String(),
		Succeeded: outcome.State == StateSucceeded,
		Failed:    outcome.State == StateFailed,
		TimedOut:  outcome.State == StateTimedOut,
		CourseUID: outcome.CourseUID,
		Message:   outcome.Message,
	}
}
