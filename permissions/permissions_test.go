package permissions

import (
	"net/http"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	manager := NewRoleSet(entity.GroupManager)
	customer := NewRoleSet(entity.GroupCustomer)
	crew := NewRoleSet(entity.GroupDeliveryCrew)
	both := NewRoleSet(entity.GroupCustomer, entity.GroupManager)
	none := NewRoleSet()

	assert.True(t, IsManager(manager))
	assert.False(t, IsManager(customer))
	assert.True(t, IsManager(both))

	assert.True(t, IsCustomer(customer))
	assert.True(t, IsCustomer(both))
	assert.False(t, IsCustomer(crew))

	assert.True(t, IsDeliveryCrew(crew))
	assert.False(t, IsDeliveryCrew(none))

	assert.True(t, IsManagerOrDeliveryCrew(manager))
	assert.True(t, IsManagerOrDeliveryCrew(crew))
	assert.False(t, IsManagerOrDeliveryCrew(customer))
	assert.False(t, IsManagerOrDeliveryCrew(none))
}

func TestIsManagerOrReadOnly(t *testing.T) {
	manager := NewRoleSet(entity.GroupManager)
	customer := NewRoleSet(entity.GroupCustomer)
	none := NewRoleSet()

	// reads are open to everyone
	assert.True(t, IsManagerOrReadOnly(customer, http.MethodGet))
	assert.True(t, IsManagerOrReadOnly(none, http.MethodHead))

	// writes are Manager only
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.True(t, IsManagerOrReadOnly(manager, m), m)
		assert.False(t, IsManagerOrReadOnly(customer, m), m)
		assert.False(t, IsManagerOrReadOnly(none, m), m)
	}
}
