package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/inkwell-hq/inkwell_backend/internal/directory"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	pasetotoken "github.com/inkwell-hq/inkwell_backend/pkg/paseto"
)

const (
	LocalsActor    = "access.actor"
	LocalsDecision = "access.decision"
)

// AccessContext resolves the authenticated account through the directory and
// runs it through the eligibility gate. The resulting actor and decision are
// stored in locals; route guards below decide what to do with them.
func AccessContext(dir directory.Directory, gate *access.Gate) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		acct, err := dir.Account(c.Context(), claims.AccountID)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				return fiber.ErrUnauthorized
			}
			return fiber.NewError(fiber.StatusBadGateway, "account directory unavailable")
		}

		decision := gate.Evaluate(acct)
		c.Locals(LocalsDecision, decision)
		c.Locals(LocalsActor, access.Actor{
			AccountID: acct.ID,
			Role:      decision.EffectiveRole,
		})
		return c.Next()
	}
}

// RequireEligible blocks accounts the gate turned away, answering with the
// gate's reason so clients can explain the denial.
func RequireEligible() fiber.Handler {
	return func(c fiber.Ctx) error {
		decision, ok := DecisionFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if !decision.CanAccess {
			return fiber.NewError(fiber.StatusForbidden, decision.Reason)
		}
		return c.Next()
	}
}

// RequireRole allows only the given effective roles. Admin passes
// unconditionally.
func RequireRole(roles ...access.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor, ok := ActorFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if actor.IsAdmin() {
			return c.Next()
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}

func ActorFromFiber(c fiber.Ctx) (access.Actor, bool) {
	v := c.Locals(LocalsActor)
	actor, ok := v.(access.Actor)
	return actor, ok
}

func DecisionFromFiber(c fiber.Ctx) (access.Decision, bool) {
	v := c.Locals(LocalsDecision)
	d, ok := v.(access.Decision)
	return d, ok
}
