package accessoracle

import (
	"context"
	"fmt"
	"net/http"

	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/mylog"
	"github.com/P0RTNOY/IronMind/services/ironapi"
)

// Oracle answers "can the current user use this resource now". It is a pure
// query: safe to call repeatedly, mutates nothing on either side. Transport
// failures are returned as errors so each caller can apply its own retry
// policy; definitive remote answers (401/403/404) are folded into the
// tri-state result.
//
//go:generate mockgen -source=oracle.go -package accessoracle -destination oracle_mock.go Oracle
type Oracle interface {
	Check(c context.Context, ref Ref) (Result, error)
}

type oracle struct {
	api    ironapi.AccessAPI
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(api ironapi.AccessAPI) Oracle {
	return &oracle{
		api:    api,
		logger: mylog.New("accessoracle"),
	}
}

func (o *oracle) Check(c context.Context, ref Ref) (Result, error) {
	switch ref.Kind {
	case KindCourse:
		return o.checkCourse(c, ref.UID)
	case KindLesson:
		playback, err := o.api.GetLessonPlayback(c, ref.UID)
		return classify(playback.EmbedURL, err)
	case KindPlan:
		download, err := o.api.GetPlanDownload(c, ref.UID)
		return classify(download.DownloadURL, err)
	case KindMembership:
		return o.checkMembership(c)
	}

	return Result{}, myerrors.NewInternalError(fmt.Errorf("unknown resource kind %d", ref.Kind))
}

func (o *oracle) checkCourse(c context.Context, courseUID string) (Result, error) {
	check, err := o.api.CheckCourseAccess(c, courseUID)
	if err != nil {
		return classifyError(err)
	}
	if !check.Allowed {
		return Result{State: StateDenied}, nil
	}

	return Result{State: StateAllowed}, nil
}

func (o *oracle) checkMembership(c context.Context) (Result, error) {
	summary, err := o.api.GetAccessSummary(c)
	if err != nil {
		return classifyError(err)
	}
	if !summary.MembershipActive {
		return Result{State: StateDenied}, nil
	}

	return Result{State: StateAllowed}, nil
}

// classify folds a gated-content response into the tri-state: a content URL
// means allowed even without an explicit flag.
func classify(contentURL string, err error) (Result, error) {
	if err != nil {
		return classifyError(err)
	}
	if contentURL == "" {
		return Result{State: StateDenied}, nil
	}

	return Result{State: StateAllowed, ContentURL: contentURL}, nil
}

func classifyError(err error) (Result, error) {
	switch myerrors.GetHTTPStatus(err) {
	case http.StatusUnauthorized:
		return Result{State: StateUnauthenticated}, nil
	case http.StatusForbidden, http.StatusNotFound:
		return Result{State: StateDenied}, nil
	}

	return Result{}, err
}
