package services

import (
	"testing"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to, orderType string
		want                bool
	}{
		{entity.StatusPending, entity.StatusConfirmed, entity.OrderTypeDelivery, true},
		{entity.StatusPending, entity.StatusCancelled, entity.OrderTypeLocal, true},
		{entity.StatusPending, entity.StatusPreparing, entity.OrderTypeLocal, false}, // no skipping
		{entity.StatusConfirmed, entity.StatusPreparing, entity.OrderTypeTakeaway, true},
		{entity.StatusConfirmed, entity.StatusCancelled, entity.OrderTypeLocal, false}, // cancel only while pending
		{entity.StatusPreparing, entity.StatusReady, entity.OrderTypeDelivery, true},
		{entity.StatusReady, entity.StatusOutForDelivery, entity.OrderTypeDelivery, true},
		{entity.StatusReady, entity.StatusDelivered, entity.OrderTypeDelivery, false},
		{entity.StatusReady, entity.StatusDelivered, entity.OrderTypeTakeaway, true},
		{entity.StatusReady, entity.StatusOutForDelivery, entity.OrderTypeTakeaway, false},
		{entity.StatusReady, entity.StatusOutForDelivery, entity.OrderTypeLocal, false},
		{entity.StatusOutForDelivery, entity.StatusDelivered, entity.OrderTypeDelivery, true},
		{entity.StatusDelivered, entity.StatusPending, entity.OrderTypeDelivery, false}, // terminal
		{entity.StatusCancelled, entity.StatusConfirmed, entity.OrderTypeDelivery, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to, tc.orderType),
			"%s -> %s (%s)", tc.from, tc.to, tc.orderType)
	}
}

func seedOrder(t *testing.T, f *fixtures, orderType, status string) entity.Order {
	t.Helper()
	o := entity.Order{
		BusinessID: f.business.ID, CustomerName: "Maria", CustomerPhone: "11987654321",
		OrderType: orderType, Status: status, Total: 5000,
	}
	require.NoError(t, f.db.Create(&o).Error)
	return o
}

func TestAdvanceStatusFullLifecycle(t *testing.T) {
	f, hub := newFixtures(t)
	o := seedOrder(t, f, entity.OrderTypeDelivery, entity.StatusPending)

	steps := []string{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	}
	for _, next := range steps {
		require.NoError(t, f.orderSvc.AdvanceStatus(f.owner.ID, f.business.ID, o.ID, next))
	}

	var got entity.Order
	require.NoError(t, f.db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusDelivered, got.Status)
	assert.Len(t, hub.events, len(steps))
}

func TestAdvanceStatusRejectsInvalidMoves(t *testing.T) {
	f, hub := newFixtures(t)

	t.Run("skipping a step", func(t *testing.T) {
		o := seedOrder(t, f, entity.OrderTypeLocal, entity.StatusPending)
		err := f.orderSvc.AdvanceStatus(f.owner.ID, f.business.ID, o.ID, entity.StatusPreparing)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("takeaway never goes out for delivery", func(t *testing.T) {
		o := seedOrder(t, f, entity.OrderTypeTakeaway, entity.StatusReady)
		err := f.orderSvc.AdvanceStatus(f.owner.ID, f.business.ID, o.ID, entity.StatusOutForDelivery)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal states stay put", func(t *testing.T) {
		o := seedOrder(t, f, entity.OrderTypeLocal, entity.StatusCancelled)
		err := f.orderSvc.AdvanceStatus(f.owner.ID, f.business.ID, o.ID, entity.StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		var got entity.Order
		require.NoError(t, f.db.First(&got, o.ID).Error)
		assert.Equal(t, entity.StatusCancelled, got.Status)
	})

	assert.Empty(t, hub.events, "rejected moves never notify")
}

func TestAdvanceStatusOwnership(t *testing.T) {
	f, _ := newFixtures(t)
	o := seedOrder(t, f, entity.OrderTypeLocal, entity.StatusPending)

	stranger := entity.User{Email: "intruso@example.com", Password: "x", Name: "Intruso"}
	require.NoError(t, f.db.Create(&stranger).Error)

	err := f.orderSvc.AdvanceStatus(stranger.ID, f.business.ID, o.ID, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusGuardDetectsRaces(t *testing.T) {
	f, _ := newFixtures(t)
	o := seedOrder(t, f, entity.OrderTypeLocal, entity.StatusPending)

	repo := f.orderSvc.Repo

	// a second dashboard confirmed the order in between
	affected, err := repo.UpdateStatusGuard(f.db, o.ID, entity.StatusPending, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.UpdateStatusGuard(f.db, o.ID, entity.StatusPending, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, affected, "the stale writer loses")

	var got entity.Order
	require.NoError(t, f.db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusConfirmed, got.Status)
}
