package accessoracle

type AccessState int

const (
	// StateAllowed: the current user can use the resource now.
	StateAllowed AccessState = iota
	// StateDenied: a valid session without the required entitlement,
	// or a resource that does not exist for this user.
	StateDenied
	// StateUnauthenticated: no valid session at all.
	StateUnauthenticated
)

func (s AccessState) String() string {
	switch s {
	case StateAllowed:
		return "allowed"
	case StateDenied:
		return "denied"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

type ResourceKind int

const (
	KindCourse ResourceKind = iota
	KindLesson
	KindPlan
	KindMembership
)

// Ref identifies the resource an access question is about.
type Ref struct {
	Kind ResourceKind
	UID  string
}

func CourseRef(courseUID string) Ref {
	return Ref{Kind: KindCourse, UID: courseUID}
}

func LessonRef(lessonUID string) Ref {
	return Ref{Kind: KindLesson, UID: lessonUID}
}

func PlanRef(planUID string) Ref {
	return Ref{Kind: KindPlan, UID: planUID}
}

func MembershipRef() Ref {
	return Ref{Kind: KindMembership}
}

// Result carries the tri-state answer plus, for lesson/plan refs, the
// content URL the gated endpoint handed out with an allowed answer.
type Result struct {
	State      AccessState
	ContentURL string
}
