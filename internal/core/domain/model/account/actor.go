package account

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies the authenticated user performing a request: their unique
// identifier and role. Commands take an Actor and apply the role predicates
// plus ownership checks before mutating anything.
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated identifier and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setID(id), actor.setRole(role)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
