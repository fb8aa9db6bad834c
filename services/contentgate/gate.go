package contentgate

import (
	"github.com/P0RTNOY/IronMind/services/accessoracle"
)

type Verdict int

const (
	VerdictUnlocked Verdict = iota
	VerdictLocked
	VerdictRequiresLogin
)

func (v Verdict) String() string {
	switch v {
	case VerdictUnlocked:
		return "unlocked"
	case VerdictLocked:
		return "locked"
	case VerdictRequiresLogin:
		return "requires_login"
	}
	return "unknown"
}

// Reason distinguishes the two ways an item ends up locked: the user has no
// entitlement, or the item has no media behind it yet. Both render as locked
// but the remediation differs (purchase vs. check back later).
type Reason int

const (
	ReasonNone Reason = iota
	ReasonPurchaseRequired
	ReasonContentUnavailable
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonPurchaseRequired:
		return "purchase_required"
	case ReasonContentUnavailable:
		return "content_unavailable"
	}
	return "unknown"
}

// Decision tells a page how to render a single content item and what to do
// when the user tries to engage it. NavigateTo is only set for
// VerdictRequiresLogin; locked items show a notice and never navigate.
type Decision struct {
	Verdict    Verdict
	Reason     Reason
	NavigateTo string
}

// Render helpers for templates.

func (d Decision) Unlocked() bool {
	return d.Verdict == VerdictUnlocked
}

func (d Decision) Locked() bool {
	return d.Verdict == VerdictLocked
}

func (d Decision) RequiresLogin() bool {
	return d.Verdict == VerdictRequiresLogin
}

func (d Decision) PurchaseRequired() bool {
	return d.Reason == ReasonPurchaseRequired
}

func (d Decision) ContentUnavailable() bool {
	return d.Reason == ReasonContentUnavailable
}

type Gate struct {
	devAuth bool
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(devAuth bool) *Gate {
	return &Gate{
		devAuth: devAuth,
	}
}

func (g *Gate) Decide(access accessoracle.AccessState, hasMedia bool) Decision {
	switch access {
	case accessoracle.StateUnauthenticated:
		return Decision{
			Verdict:    VerdictRequiresLogin,
			NavigateTo: g.loginTarget(),
		}
	case accessoracle.StateDenied:
		return Decision{
			Verdict: VerdictLocked,
			Reason:  ReasonPurchaseRequired,
		}
	}

	if !hasMedia {
		return Decision{
			Verdict: VerdictLocked,
			Reason:  ReasonContentUnavailable,
		}
	}

	return Decision{
		Verdict: VerdictUnlocked,
	}
}

func (g *Gate) loginTarget() string {
	if g.devAuth {
		return "/dev-auth"
	}
	return "/login"
}
