package ironapi

import (
	"encoding/json"
	"time"
)

// Scope discriminates what a purchase buys: one course or the membership tier.
type Scope string

const (
	ScopeCourse     Scope = "course"
	ScopeMembership Scope = "membership"
)

// checkoutKind is the wire name the remote API uses for a Scope.
func (s Scope) checkoutKind() string {
	if s == ScopeMembership {
		return "subscription"
	}
	return "one_time"
}

type CourseType string

const (
	CourseTypeOneTime      CourseType = "one_time"
	CourseTypeSubscription CourseType = "subscription"
)

type Course struct {
	ID            string     `json:"id"`
	Title         string     `json:"titleHe"`
	Description   string     `json:"descriptionHe"`
	Type          CourseType `json:"type"`
	Published     bool       `json:"published"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
}

type Lesson struct {
	ID               string   `json:"id"`
	CourseID         string   `json:"courseId"`
	Title            string   `json:"titleHe"`
	Description      string   `json:"descriptionHe"`
	MovementCategory string   `json:"movementCategory,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	VideoID          string   `json:"vimeoVideoId,omitempty"`
	OrderIndex       int      `json:"orderIndex"`
	Published        bool     `json:"published"`
}

// HasMedia reports whether the lesson has an underlying video at all.
// A lesson without media is "locked" for a different reason than a lesson
// the user has no entitlement for.
func (l Lesson) HasMedia() bool {
	return l.VideoID != ""
}

type Plan struct {
	ID          string   `json:"id"`
	CourseID    string   `json:"courseId,omitempty"`
	Title       string   `json:"titleHe"`
	Description string   `json:"descriptionHe"`
	Tags        []string `json:"tags,omitempty"`
	PDFPath     string   `json:"pdfPath,omitempty"`
	Published   bool     `json:"published"`
}

func (p Plan) HasMedia() bool {
	return p.PDFPath != ""
}

type SearchResult struct {
	Courses []Course `json:"courses"`
	Lessons []Lesson `json:"lessons"`
	Plans   []Plan   `json:"plans"`
}

type AccessSummary struct {
	UID                 string   `json:"uid"`
	Email               string   `json:"email,omitempty"`
	IsAdmin             bool     `json:"isAdmin"`
	MembershipActive    bool     `json:"membershipActive"`
	MembershipExpiresAt string   `json:"membershipExpiresAt,omitempty"`
	EntitledCourseIDs   []string `json:"entitledCourseIds"`
}

type AccessCheck struct {
	Allowed bool `json:"allowed"`
}

// CheckoutSession is the provider-agnostic result of initiating a purchase:
// an opaque redirect target plus the server-side payment intent tracking it.
type CheckoutSession struct {
	RedirectURL string `json:"url"`
	IntentID    string `json:"intentId,omitempty"`
}

// SessionVerification is the provider-redirect verification result.
type SessionVerification struct {
	CourseID      string `json:"courseId"`
	PaymentStatus string `json:"paymentStatus"`
}

const PaymentStatusPaid = "paid"

type PaymentIntentStatus string

const (
	IntentPending   PaymentIntentStatus = "pending"
	IntentSucceeded PaymentIntentStatus = "succeeded"
	IntentFailed    PaymentIntentStatus = "failed"
)

type PaymentIntent struct {
	ID       string              `json:"id"`
	Scope    Scope               `json:"scope,omitempty"`
	CourseID string              `json:"courseId,omitempty"`
	Status   PaymentIntentStatus `json:"status"`
}

type Playback struct {
	Provider string `json:"provider"`
	EmbedURL string `json:"embedUrl"`
}

type Download struct {
	DownloadURL string `json:"downloadUrl"`
}

type Entitlement struct {
	ID        string     `json:"id"`
	UID       string     `json:"uid"`
	Kind      string     `json:"kind"`
	Status    string     `json:"status"`
	CourseID  string     `json:"courseId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type UserSummary struct {
	UID               string   `json:"uid"`
	Email             string   `json:"email,omitempty"`
	Name              string   `json:"name,omitempty"`
	MembershipActive  bool     `json:"membershipActive"`
	EntitledCourseIDs []string `json:"entitledCourseIds"`
}

type UserDetail struct {
	Profile      UserSummary   `json:"profile"`
	Entitlements []Entitlement `json:"entitlements"`
}

// Session is the bearer token handed out at login. The frontend stores it
// in the session cookie and replays it on every API call.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// PaymentEvent is one received provider webhook, with the payload redacted
// server-side: the listing is for debugging, not for replaying PII around.
type PaymentEvent struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	Type        string `json:"type"`
	ReceivedAt  string `json:"receivedAt,omitempty"`
	ProviderRef string `json:"providerRefCandidate,omitempty"`
	VerifyMode  string `json:"verifyMode,omitempty"`
	Unmapped    bool   `json:"unmapped,omitempty"`
}

// WebhookReplay pushes a raw provider payload through the server-side
// webhook handler, for debugging without tunnels or provider access.
type WebhookReplay struct {
	Provider     string            `json:"provider"`
	Payload      json.RawMessage   `json:"payload"`
	Headers      map[string]string `json:"headers,omitempty"`
	ForceLogOnly bool              `json:"force_log_only"`
}

type WebhookReplayResult struct {
	OK           bool     `json:"ok"`
	Provider     string   `json:"provider"`
	EventID      string   `json:"event_id,omitempty"`
	EventType    string   `json:"event_type,omitempty"`
	Notes        []string `json:"notes,omitempty"`
	ProviderRef  string   `json:"provider_ref,omitempty"`
	IntentFound  bool     `json:"intent_found"`
	IntentID     string   `json:"intent_id,omitempty"`
	IntentStatus string   `json:"intent_status,omitempty"`
	MutationRisk string   `json:"mutation_risk,omitempty"`
}

type ActivityEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	UID       string `json:"uid"`
	CourseID  string `json:"courseId,omitempty"`
	LessonID  string `json:"lessonId,omitempty"`
	PlanID    string `json:"planId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type UploadSign struct {
	UploadURL  string `json:"uploadUrl"`
	PublicURL  string `json:"publicUrl"`
	ObjectPath string `json:"objectPath"`
}
