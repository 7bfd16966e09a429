// Package directory is the narrow surface through which this core reads
// account and client records owned by other subsystems. Accounts live in the
// identity service, clients in the CRM; neither is persisted here.
package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("directory record not found")

// Account is the identity-subsystem record consumed by the access gate and
// the report exporter.
type Account struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"display_name"`
	Role               string    `json:"role"`
	SubscriptionTier   string    `json:"subscription_tier"`
	SubscriptionActive bool      `json:"subscription_active"`
	LicenseVerified    bool      `json:"license_verified"`
	LicenseNumber      string    `json:"license_number"`
}

// Client is the CRM display record used for report attribution.
type Client struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

type Directory interface {
	Account(ctx context.Context, id uuid.UUID) (*Account, error)
	// Client resolves a CRM client id to a display record. Callers must
	// tolerate ErrNotFound and fall back to attribution captured at booking.
	Client(ctx context.Context, id uuid.UUID) (*Client, error)
}
