package account_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := account.NewActor(id, account.RoleCustomer)

		require.NoError(t, err)
		assert.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, account.RoleCustomer, actor.Role())
	})

	t.Run("should fail with zero ID", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := account.NewActor(zeroID, account.RoleDriver)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var actor account.Actor

		assert.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
	})
}
