package ironapi

import "context"

// The remote IronMind API, split per concern so consumers depend on (and
// tests mock) only the slice they use.

//go:generate mockgen -source=api.go -package ironapi -destination api_mock.go CatalogAPI,CheckoutAPI,AccessAPI,AdminAPI,AuthAPI

type AuthAPI interface {
	Login(c context.Context, email string, password string) (Session, error)
	DevLogin(c context.Context, email string) (Session, error)
}

type CatalogAPI interface {
	ListCourses(c context.Context) ([]Course, error)
	GetCourse(c context.Context, courseUID string) (Course, error)
	ListLessons(c context.Context, courseUID string) ([]Lesson, error)
	GetLesson(c context.Context, lessonUID string) (Lesson, error)
	ListPlans(c context.Context, courseUID string) ([]Plan, error)
	GetPlan(c context.Context, planUID string) (Plan, error)
	Search(c context.Context, query string) (SearchResult, error)
}

type CheckoutAPI interface {
	CreateCheckoutSession(c context.Context, scope Scope, courseUID string, successURL string, cancelURL string) (CheckoutSession, error)
	VerifyCheckoutSession(c context.Context, sessionUID string) (SessionVerification, error)
	GetPaymentIntent(c context.Context, intentUID string) (PaymentIntent, error)
}

type AccessAPI interface {
	CheckCourseAccess(c context.Context, courseUID string) (AccessCheck, error)
	GetAccessSummary(c context.Context) (AccessSummary, error)
	GetLessonPlayback(c context.Context, lessonUID string) (Playback, error)
	GetPlanDownload(c context.Context, planUID string) (Download, error)
}

type AdminAPI interface {
	SaveCourse(c context.Context, course Course) (Course, error)
	DeleteCourse(c context.Context, courseUID string) error
	SaveLesson(c context.Context, lesson Lesson) (Lesson, error)
	DeleteLesson(c context.Context, lessonUID string) error
	SavePlan(c context.Context, plan Plan) (Plan, error)
	DeletePlan(c context.Context, planUID string) error
	ListUsers(c context.Context) ([]UserSummary, error)
	GetUser(c context.Context, uid string) (UserDetail, error)
	GrantAccess(c context.Context, uid string, kind string, courseUID string) error
	RevokeAccess(c context.Context, uid string, entitlementUID string) error
	SignUpload(c context.Context, kind string, filename string, contentType string) (UploadSign, error)
	ListPaymentEvents(c context.Context, limit int) ([]PaymentEvent, error)
	ReplayWebhook(c context.Context, replay WebhookReplay) (WebhookReplayResult, error)
	ListActivity(c context.Context, limit int) ([]ActivityEvent, error)
}
