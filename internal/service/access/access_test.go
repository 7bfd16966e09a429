package access

import (
	"testing"

	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/directory"
)

func account(role, tier string, active, verified bool) *directory.Account {
	return &directory.Account{
		ID:                 uuid.New(),
		Role:               role,
		SubscriptionTier:   tier,
		SubscriptionActive: active,
		LicenseVerified:    verified,
	}
}

func TestEvaluate(t *testing.T) {
	gate := NewGate()

	tests := []struct {
		name       string
		acct       *directory.Account
		wantAccess bool
		wantRole   Role
		wantReason string
	}{
		{
			name:       "supervisor with studio tier and verified license",
			acct:       account("supervisor", TierStudio, true, true),
			wantAccess: true,
			wantRole:   RoleSupervisor,
		},
		{
			name:       "legacy licensed_artist alias resolves to supervisor",
			acct:       account("licensed_artist", TierStudio, true, true),
			wantAccess: true,
			wantRole:   RoleSupervisor,
		},
		{
			name:       "legacy master_artist alias resolves to supervisor",
			acct:       account("master_artist", TierStudio, true, true),
			wantAccess: true,
			wantRole:   RoleSupervisor,
		},
		{
			name:       "apprentice",
			acct:       account("apprentice", TierStudio, true, true),
			wantAccess: true,
			wantRole:   RoleApprentice,
		},
		{
			name:       "legacy student alias resolves to apprentice",
			acct:       account("student", TierStudio, true, true),
			wantAccess: true,
			wantRole:   RoleApprentice,
		},
		{
			name:       "admin bypasses tier and license checks",
			acct:       account("admin", "starter", false, false),
			wantAccess: true,
			wantRole:   RoleAdmin,
		},
		{
			name:       "superadmin bypasses tier and license checks",
			acct:       account("superadmin", "solo", false, false),
			wantAccess: true,
			wantRole:   RoleAdmin,
		},
		{
			name:       "ineligible tier denied before license check",
			acct:       account("supervisor", "solo", true, true),
			wantAccess: false,
			wantRole:   RoleNone,
			wantReason: ReasonTierRequired,
		},
		{
			name:       "inactive subscription denied",
			acct:       account("supervisor", TierStudio, false, true),
			wantAccess: false,
			wantRole:   RoleNone,
			wantReason: ReasonTierRequired,
		},
		{
			name:       "unverified license denied",
			acct:       account("supervisor", TierStudio, true, false),
			wantAccess: false,
			wantRole:   RoleNone,
			wantReason: ReasonLicenseRequired,
		},
		{
			name:       "unmapped role denied",
			acct:       account("receptionist", TierStudio, true, true),
			wantAccess: false,
			wantRole:   RoleNone,
			wantReason: ReasonUnknownRole,
		},
		{
			name:       "empty role denied",
			acct:       account("", TierStudio, true, true),
			wantAccess: false,
			wantRole:   RoleNone,
			wantReason: ReasonUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := gate.Evaluate(tt.acct)
			if d.CanAccess != tt.wantAccess {
				t.Errorf("CanAccess = %v, want %v", d.CanAccess, tt.wantAccess)
			}
			if d.EffectiveRole != tt.wantRole {
				t.Errorf("EffectiveRole = %q, want %q", d.EffectiveRole, tt.wantRole)
			}
			if tt.wantReason != "" && d.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}

func TestCapabilityPredicates(t *testing.T) {
	tests := []struct {
		role        Role
		wantPublish bool
		wantBook    bool
	}{
		{RoleNone, false, false},
		{RoleApprentice, false, true},
		{RoleSupervisor, true, false},
		{RoleAdmin, true, true},
	}

	for _, tt := range tests {
		if got := CanPublishAvailability(tt.role); got != tt.wantPublish {
			t.Errorf("CanPublishAvailability(%s) = %v, want %v", tt.role, got, tt.wantPublish)
		}
		if got := CanBookSupervision(tt.role); got != tt.wantBook {
			t.Errorf("CanBookSupervision(%s) = %v, want %v", tt.role, got, tt.wantBook)
		}
	}
}

func TestRoutingPredicates(t *testing.T) {
	tests := []struct {
		name        string
		acct        *directory.Account
		wantGeneral bool
		wantHere    bool
	}{
		{"admin routes to general", account("admin", TierStudio, true, true), true, false},
		{"owner routes to general", account("owner", TierStudio, true, true), true, false},
		{"manager routes to general", account("manager", TierStudio, true, true), true, false},
		{"instructor routes to general", account("instructor", TierStudio, true, true), true, false},
		{"verified licensed artist routes to general", account("licensed_artist", TierStudio, true, true), true, false},
		{"unverified licensed artist routes here", account("licensed_artist", TierStudio, true, false), false, true},
		{"apprentice routes here", account("apprentice", TierStudio, true, false), false, true},
		{"student routes here", account("student", TierStudio, true, true), false, true},
		{"unknown role routes nowhere", account("receptionist", TierStudio, true, true), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoutesToGeneralBooking(tt.acct); got != tt.wantGeneral {
				t.Errorf("RoutesToGeneralBooking = %v, want %v", got, tt.wantGeneral)
			}
			if got := RoutesToSupervisedBooking(tt.acct); got != tt.wantHere {
				t.Errorf("RoutesToSupervisedBooking = %v, want %v", got, tt.wantHere)
			}
		})
	}
}
