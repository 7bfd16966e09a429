// Package access resolves raw account records into the effective capability
// used to gate every supervised-practice operation.
package access

import (
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/directory"
)

// Role is the effective access-control category derived from raw account
// attributes. Everything downstream branches on Role, never on the raw
// role string.
type Role string

const (
	RoleNone       Role = "NONE"
	RoleApprentice Role = "APPRENTICE"
	RoleSupervisor Role = "SUPERVISOR"
	RoleAdmin      Role = "ADMIN"
)

// TierStudio is the only subscription tier eligible for supervised-practice
// scheduling.
const TierStudio = "studio"

const (
	ReasonTierRequired    = "tier/subscription required"
	ReasonLicenseRequired = "license verification required"
	ReasonUnknownRole     = "role not eligible for supervised practice"
)

// roleAliases maps every raw role string the platform has ever issued onto
// an effective role. Legacy aliases collapse here and nowhere else; adding
// a new alias touches this table only.
var roleAliases = map[string]Role{
	// administrative
	"admin":      RoleAdmin,
	"superadmin": RoleAdmin,

	// supervisor-class: current string plus two historical licensed-artist strings
	"supervisor":      RoleSupervisor,
	"licensed_artist": RoleSupervisor,
	"master_artist":   RoleSupervisor,

	// apprentice-class: current string plus one legacy alias
	"apprentice": RoleApprentice,
	"student":    RoleApprentice,
}

// generalBookingRoles are raw roles that belong to the unrelated general
// booking subsystem regardless of license state.
var generalBookingRoles = map[string]struct{}{
	"admin":      {},
	"superadmin": {},
	"owner":      {},
	"manager":    {},
	"instructor": {},
}

// Decision is the gate's verdict for one account.
type Decision struct {
	CanAccess      bool
	IsEligibleTier bool
	EffectiveRole  Role
	Reason         string
}

// Actor identifies who is performing a gated operation; services use it for
// ownership checks.
type Actor struct {
	AccountID uuid.UUID
	Role      Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Gate is stateless; a single value is shared across the process.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// Evaluate applies the eligibility rules in order: admin bypass, tier,
// license verification, role alias resolution.
func (g *Gate) Evaluate(acct *directory.Account) Decision {
	eligibleTier := acct.SubscriptionTier == TierStudio && acct.SubscriptionActive
	role := roleAliases[acct.Role]

	// Administrative roles bypass tier and license checks.
	if role == RoleAdmin {
		return Decision{CanAccess: true, IsEligibleTier: eligibleTier, EffectiveRole: RoleAdmin}
	}

	if !eligibleTier {
		return Decision{IsEligibleTier: false, EffectiveRole: RoleNone, Reason: ReasonTierRequired}
	}

	if !acct.LicenseVerified {
		return Decision{IsEligibleTier: true, EffectiveRole: RoleNone, Reason: ReasonLicenseRequired}
	}

	if role == RoleNone || role == "" {
		return Decision{IsEligibleTier: true, EffectiveRole: RoleNone, Reason: ReasonUnknownRole}
	}

	return Decision{CanAccess: true, IsEligibleTier: true, EffectiveRole: role}
}

// CanPublishAvailability reports whether the role may publish availability
// blocks.
func CanPublishAvailability(r Role) bool {
	return r == RoleSupervisor || r == RoleAdmin
}

// CanBookSupervision reports whether the role may create bookings.
func CanBookSupervision(r Role) bool {
	return r == RoleApprentice || r == RoleAdmin
}

// RoutesToGeneralBooking reports whether the account belongs to the general
// (non-supervised) booking subsystem: staff/admin roles, or licensed artists
// whose license has been verified.
func RoutesToGeneralBooking(acct *directory.Account) bool {
	if _, ok := generalBookingRoles[acct.Role]; ok {
		return true
	}
	return roleAliases[acct.Role] == RoleSupervisor && acct.LicenseVerified
}

// RoutesToSupervisedBooking reports whether the account belongs here:
// apprentice-class roles, or artist roles still awaiting license
// verification.
func RoutesToSupervisedBooking(acct *directory.Account) bool {
	switch roleAliases[acct.Role] {
	case RoleApprentice:
		return true
	case RoleSupervisor:
		return !acct.LicenseVerified
	default:
		return false
	}
}
