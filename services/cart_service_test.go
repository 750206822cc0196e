package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddDefaultsQuantity(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	u := createUser(t, db, "alice", entity.GroupCustomer)
	m := createMenuItem(t, db, "Bruschetta", 450)

	line, err := svc.Add(u.ID, m.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, int64(450), line.UnitPrice)
	assert.Equal(t, int64(450), line.Price)
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	u := createUser(t, db, "alice", entity.GroupCustomer)

	_, err := svc.Add(u.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestCartReAddMergesQuantity(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	u := createUser(t, db, "alice", entity.GroupCustomer)
	m := createMenuItem(t, db, "Greek Salad", 900)

	_, err := svc.Add(u.ID, m.ID, 2)
	require.NoError(t, err)
	line, err := svc.Add(u.ID, m.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, int64(4500), line.Price)

	// still one row per (user, item)
	lines, subtotal, err := svc.List(u.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(4500), subtotal)
}

func TestCartLinePriceInvariant(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	u := createUser(t, db, "alice", entity.GroupCustomer)
	a := createMenuItem(t, db, "Pasta", 700)
	b := createMenuItem(t, db, "Lemon Cake", 300)

	_, err := svc.Add(u.ID, a.ID, 3)
	require.NoError(t, err)
	_, err = svc.Add(u.ID, b.ID, 2)
	require.NoError(t, err)

	lines, subtotal, err := svc.List(u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, l.UnitPrice*int64(l.Quantity), l.Price)
	}
	assert.Equal(t, int64(2700), subtotal)
}

func TestCartClear(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	u := createUser(t, db, "alice", entity.GroupCustomer)
	other := createUser(t, db, "bob", entity.GroupCustomer)
	m := createMenuItem(t, db, "Pasta", 700)

	_, err := svc.Add(u.ID, m.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(other.ID, m.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(u.ID))

	lines, _, err := svc.List(u.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// other carts untouched
	lines, _, err = svc.List(other.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
