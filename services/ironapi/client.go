package ironapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/P0RTNOY/IronMind/lib/mycontext"
	"github.com/P0RTNOY/IronMind/lib/myerrors"
	"github.com/P0RTNOY/IronMind/lib/myhttpclient"
	"github.com/P0RTNOY/IronMind/lib/mylog"
)

// Client talks JSON to the remote IronMind API. It is a pure consumer:
// all state lives on the server side.
type Client struct {
	baseURL string
	sender  myhttpclient.HTTPSender
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewClient(baseURL string, sender myhttpclient.HTTPSender) *Client {
	return &Client{
		baseURL: baseURL,
		sender:  sender,
		logger:  mylog.New("ironapi"),
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

func (cl *Client) call(c context.Context, method string, path string, reqBody any, respBody any) error {
	var payload []byte
	var err error
	if reqBody != nil {
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
		}
	}

	headers := map[string]string{}
	if token := mycontext.SessionToken(c); token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	status, respPayload, err := cl.sender.Send(c, method, cl.baseURL+path, headers, payload)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error calling %s %s: %s", method, path, err))
	}

	if status >= http.StatusBadRequest {
		detail := errorBody{}
		if unmarshalErr := json.Unmarshal(respPayload, &detail); unmarshalErr != nil || detail.Detail == "" {
			detail.Detail = http.StatusText(status)
		}
		return myerrors.NewErrorWithStatus(status, fmt.Errorf("%s %s: %s", method, path, detail.Detail))
	}

	if respBody != nil && len(respPayload) > 0 {
		err = json.Unmarshal(respPayload, respBody)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error unmarshalling response of %s %s: %s", method, path, err))
		}
	}

	return nil
}

// Auth

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (cl *Client) Login(c context.Context, email string, password string) (Session, error) {
	session := Session{}
	err := cl.call(c, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &session)
	return session, err
}

func (cl *Client) DevLogin(c context.Context, email string) (Session, error) {
	session := Session{}
	err := cl.call(c, http.MethodPost, "/auth/dev-login", loginRequest{Email: email}, &session)
	return session, err
}

// Catalog

func (cl *Client) ListCourses(c context.Context) ([]Course, error) {
	courses := []Course{}
	err := cl.call(c, http.MethodGet, "/courses", nil, &courses)
	return courses, err
}

func (cl *Client) GetCourse(c context.Context, courseUID string) (Course, error) {
	course := Course{}
	err := cl.call(c, http.MethodGet, "/courses/"+courseUID, nil, &course)
	return course, err
}

func (cl *Client) ListLessons(c context.Context, courseUID string) ([]Lesson, error) {
	lessons := []Lesson{}
	err := cl.call(c, http.MethodGet, "/courses/"+courseUID+"/lessons", nil, &lessons)
	return lessons, err
}

func (cl *Client) GetLesson(c context.Context, lessonUID string) (Lesson, error) {
	lesson := Lesson{}
	err := cl.call(c, http.MethodGet, "/lessons/"+lessonUID, nil, &lesson)
	return lesson, err
}

func (cl *Client) ListPlans(c context.Context, courseUID string) ([]Plan, error) {
	plans := []Plan{}
	err := cl.call(c, http.MethodGet, "/courses/"+courseUID+"/plans", nil, &plans)
	return plans, err
}

func (cl *Client) GetPlan(c context.Context, planUID string) (Plan, error) {
	plan := Plan{}
	err := cl.call(c, http.MethodGet, "/plans/"+planUID, nil, &plan)
	return plan, err
}

func (cl *Client) Search(c context.Context, query string) (SearchResult, error) {
	result := SearchResult{}
	err := cl.call(c, http.MethodGet, "/search?q="+url.QueryEscape(query), nil, &result)
	return result, err
}

// Checkout

type createCheckoutRequest struct {
	Type       string `json:"type"`
	CourseID   string `json:"courseId,omitempty"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

func (cl *Client) CreateCheckoutSession(c context.Context, scope Scope, courseUID string, successURL string, cancelURL string) (CheckoutSession, error) {
	session := CheckoutSession{}
	err := cl.call(c, http.MethodPost, "/checkout/session", createCheckoutRequest{
		Type:       scope.checkoutKind(),
		CourseID:   courseUID,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}, &session)
	return session, err
}

func (cl *Client) VerifyCheckoutSession(c context.Context, sessionUID string) (SessionVerification, error) {
	verification := SessionVerification{}
	err := cl.call(c, http.MethodGet, "/checkout/session/"+sessionUID, nil, &verification)
	return verification, err
}

func (cl *Client) GetPaymentIntent(c context.Context, intentUID string) (PaymentIntent, error) {
	intent := PaymentIntent{}
	err := cl.call(c, http.MethodGet, "/payments/intents/"+intentUID, nil, &intent)
	return intent, err
}

// Access

func (cl *Client) CheckCourseAccess(c context.Context, courseUID string) (AccessCheck, error) {
	check := AccessCheck{}
	err := cl.call(c, http.MethodGet, "/access/courses/"+courseUID, nil, &check)
	return check, err
}

func (cl *Client) GetAccessSummary(c context.Context) (AccessSummary, error) {
	summary := AccessSummary{}
	err := cl.call(c, http.MethodGet, "/access/me", nil, &summary)
	return summary, err
}

func (cl *Client) GetLessonPlayback(c context.Context, lessonUID string) (Playback, error) {
	playback := Playback{}
	err := cl.call(c, http.MethodGet, "/content/lessons/"+lessonUID+"/playback", nil, &playback)
	return playback, err
}

func (cl *Client) GetPlanDownload(c context.Context, planUID string) (Download, error) {
	download := Download{}
	err := cl.call(c, http.MethodGet, "/content/plans/"+planUID+"/download", nil, &download)
	return download, err
}

// Admin

func (cl *Client) SaveCourse(c context.Context, course Course) (Course, error) {
	saved := Course{}
	err := cl.call(c, http.MethodPost, "/admin/courses", course, &saved)
	return saved, err
}

func (cl *Client) DeleteCourse(c context.Context, courseUID string) error {
	return cl.call(c, http.MethodDelete, "/admin/courses/"+courseUID, nil, nil)
}

func (cl *Client) SaveLesson(c context.Context, lesson Lesson) (Lesson, error) {
	saved := Lesson{}
	err := cl.call(c, http.MethodPost, "/admin/lessons", lesson, &saved)
	return saved, err
}

func (cl *Client) DeleteLesson(c context.Context, lessonUID string) error {
	return cl.call(c, http.MethodDelete, "/admin/lessons/"+lessonUID, nil, nil)
}

func (cl *Client) SavePlan(c context.Context, plan Plan) (Plan, error) {
	saved := Plan{}
	err := cl.call(c, http.MethodPost, "/admin/plans", plan, &saved)
	return saved, err
}

func (cl *Client) DeletePlan(c context.Context, planUID string) error {
	return cl.call(c, http.MethodDelete, "/admin/plans/"+planUID, nil, nil)
}

func (cl *Client) ListUsers(c context.Context) ([]UserSummary, error) {
	users := struct {
		Users []UserSummary `json:"users"`
	}{}
	err := cl.call(c, http.MethodGet, "/admin/users", nil, &users)
	return users.Users, err
}

func (cl *Client) GetUser(c context.Context, uid string) (UserDetail, error) {
	detail := UserDetail{}
	err := cl.call(c, http.MethodGet, "/admin/users/"+uid, nil, &detail)
	return detail, err
}

type grantAccessRequest struct {
	Kind     string `json:"kind"`
	CourseID string `json:"courseId,omitempty"`
}

func (cl *Client) GrantAccess(c context.Context, uid string, kind string, courseUID string) error {
	return cl.call(c, http.MethodPost, "/admin/users/"+uid+"/entitlements", grantAccessRequest{
		Kind:     kind,
		CourseID: courseUID,
	}, nil)
}

func (cl *Client) RevokeAccess(c context.Context, uid string, entitlementUID string) error {
	return cl.call(c, http.MethodDelete, "/admin/users/"+uid+"/entitlements/"+entitlementUID, nil, nil)
}

type signUploadRequest struct {
	Kind        string `json:"kind"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

func (cl *Client) SignUpload(c context.Context, kind string, filename string, contentType string) (UploadSign, error) {
	sign := UploadSign{}
	err := cl.call(c, http.MethodPost, "/admin/uploads/sign", signUploadRequest{
		Kind:        kind,
		Filename:    filename,
		ContentType: contentType,
	}, &sign)
	return sign, err
}

func (cl *Client) ListPaymentEvents(c context.Context, limit int) ([]PaymentEvent, error) {
	events := []PaymentEvent{}
	err := cl.call(c, http.MethodGet, fmt.Sprintf("/admin/payments/events?limit=%d", limit), nil, &events)
	return events, err
}

func (cl *Client) ReplayWebhook(c context.Context, replay WebhookReplay) (WebhookReplayResult, error) {
	result := WebhookReplayResult{}
	err := cl.call(c, http.MethodPost, "/admin/payments/replay", replay, &result)
	return result, err
}

func (cl *Client) ListActivity(c context.Context, limit int) ([]ActivityEvent, error) {
	events := []ActivityEvent{}
	err := cl.call(c, http.MethodGet, fmt.Sprintf("/admin/activity?limit=%d", limit), nil, &events)
	return events, err
}
