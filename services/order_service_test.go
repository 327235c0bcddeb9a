package services

import (
	"testing"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckout(f *fixtures) *CheckoutReq {
	return &CheckoutReq{
		CustomerName:   "Maria Silva",
		CustomerPhone:  "(11) 98765-4321",
		OrderType:      entity.OrderTypeDelivery,
		Street:         "Rua das Flores",
		Number:         "123",
		Complement:     "ap 42",
		DeliveryAreaID: f.area.ID,
		PaymentMethod:  "PIX",
	}
}

func fillCart(t *testing.T, f *fixtures) {
	t.Helper()
	require.NoError(t, f.cartSvc.Add(testSession, &AddToCartIn{
		BusinessID:    f.business.ID,
		ProductID:     f.burger.ID,
		Quantity:      2,
		AdditionalIDs: []uint{f.bacon.ID},
	}))
}

func TestCheckoutHappyPath(t *testing.T) {
	f, hub := newFixtures(t)
	fillCart(t, f)

	res, err := f.orderSvc.Checkout(testSession, &f.business, validCheckout(f))
	require.NoError(t, err)
	require.NotZero(t, res.ID)
	assert.Equal(t, int64(7080), res.Total) // (2890+400)*2 + 500 area fee

	var o entity.Order
	require.NoError(t, f.db.First(&o, res.ID).Error)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, int64(6580), o.Subtotal)
	assert.Equal(t, int64(500), o.DeliveryFee)
	assert.Equal(t, "Rua das Flores, 123 - ap 42", o.Address)
	assert.Equal(t, "Centro", o.DeliveryArea)

	var items []entity.OrderItem
	require.NoError(t, f.db.Where("order_id = ?", o.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2890), items[0].UnitPrice)
	assert.Equal(t, int64(400), items[0].AdditionalsTotal)
	assert.Equal(t, int64(6580), items[0].Total)

	// cart is consumed and unbound
	out, err := f.cartSvc.Get(testSession)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
	assert.Zero(t, out.Cart.BusinessID)

	require.Len(t, hub.events, 1)
	assert.Contains(t, hub.events[0], "insert")
}

func TestCheckoutTakeawaySkipsAddressAndFee(t *testing.T) {
	f, _ := newFixtures(t)
	fillCart(t, f)

	req := validCheckout(f)
	req.OrderType = entity.OrderTypeTakeaway
	req.Street = ""
	req.DeliveryAreaID = 0

	res, err := f.orderSvc.Checkout(testSession, &f.business, req)
	require.NoError(t, err)
	assert.Equal(t, int64(6580), res.Total)

	var o entity.Order
	require.NoError(t, f.db.First(&o, res.ID).Error)
	assert.Zero(t, o.DeliveryFee)
	assert.Empty(t, o.Address)
}

func TestCheckoutValidationChain(t *testing.T) {
	f, _ := newFixtures(t)

	t.Run("empty cart", func(t *testing.T) {
		_, err := f.orderSvc.Checkout("sess-nobody", &f.business, validCheckout(f))
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	fillCart(t, f)

	cases := []struct {
		name   string
		mutate func(*CheckoutReq)
		want   error
	}{
		{"blank name", func(r *CheckoutReq) { r.CustomerName = "   " }, ErrNameRequired},
		{"short phone", func(r *CheckoutReq) { r.CustomerPhone = "9876-543" }, ErrPhoneInvalid},
		{"delivery without street", func(r *CheckoutReq) { r.Street = "" }, ErrAddressRequired},
		{"delivery without area", func(r *CheckoutReq) { r.DeliveryAreaID = 0 }, ErrAddressRequired},
		{"area from another menu", func(r *CheckoutReq) { r.DeliveryAreaID = 9999 }, ErrAddressRequired},
		{"no payment method", func(r *CheckoutReq) { r.PaymentMethod = "" }, ErrPaymentRequired},
		{"unknown payment method", func(r *CheckoutReq) { r.PaymentMethod = "Cheque" }, ErrPaymentRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckout(f)
			tc.mutate(req)
			_, err := f.orderSvc.Checkout(testSession, &f.business, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// name fails before phone: the chain has a fixed order
	req := validCheckout(f)
	req.CustomerName = ""
	req.CustomerPhone = "123"
	_, err := f.orderSvc.Checkout(testSession, &f.business, req)
	assert.ErrorIs(t, err, ErrNameRequired)

	// nothing was written and the cart survived every rejection
	var n int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)
	out, err := f.cartSvc.Get(testSession)
	require.NoError(t, err)
	assert.Len(t, out.Cart.Items, 1)
}

func TestCheckoutWrongMenu(t *testing.T) {
	f, _ := newFixtures(t)
	other, _ := f.otherBusiness(t)
	fillCart(t, f)

	_, err := f.orderSvc.Checkout(testSession, &other, validCheckout(f))
	assert.ErrorIs(t, err, ErrCartWrongMenu)
}

func TestCheckoutMinimumOrder(t *testing.T) {
	f, _ := newFixtures(t)
	fillCart(t, f) // subtotal 6580

	t.Run("below the minimum", func(t *testing.T) {
		f.setMinOrder(t, 7000)
		_, err := f.orderSvc.Checkout(testSession, &f.business, validCheckout(f))
		require.ErrorIs(t, err, ErrBelowMinimum)
		assert.Contains(t, err.Error(), "70.00")
	})

	t.Run("exactly the minimum", func(t *testing.T) {
		f.setMinOrder(t, 6580)
		_, err := f.orderSvc.Checkout(testSession, &f.business, validCheckout(f))
		assert.NoError(t, err)
	})
}

func TestCheckoutNoPaymentMethodsConfigured(t *testing.T) {
	f, _ := newFixtures(t)
	fillCart(t, f)

	f.business.PaymentMethods = nil
	req := validCheckout(f)
	req.PaymentMethod = ""

	_, err := f.orderSvc.Checkout(testSession, &f.business, req)
	assert.NoError(t, err, "an empty list disables the payment check")
}

func TestOrderTotalsSurviveRepricing(t *testing.T) {
	f, _ := newFixtures(t)
	fillCart(t, f)

	res, err := f.orderSvc.Checkout(testSession, &f.business, validCheckout(f))
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&entity.Product{}).Where("id = ?", f.burger.ID).
		Update("price", 100).Error)

	d, err := f.orderSvc.GetForConfirmation(res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7080), d.Order.Total)
	require.Len(t, d.Items, 1)
	assert.Equal(t, int64(2890), d.Items[0].UnitPrice)
}

func TestDashboardOwnership(t *testing.T) {
	f, _ := newFixtures(t)
	other, _ := f.otherBusiness(t)
	fillCart(t, f)

	res, err := f.orderSvc.Checkout(testSession, &f.business, validCheckout(f))
	require.NoError(t, err)

	_, err = f.orderSvc.ListForBusiness(f.owner.ID, other.ID, "active", 1, 20)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.orderSvc.DetailForBusiness(f.owner.ID, f.business.ID, res.ID)
	assert.NoError(t, err)
}

func TestDashboardViews(t *testing.T) {
	f, _ := newFixtures(t)

	mk := func(status string) {
		o := entity.Order{
			BusinessID: f.business.ID, CustomerName: "x", CustomerPhone: "11987654321",
			OrderType: entity.OrderTypeLocal, Status: status, Total: 1000,
		}
		require.NoError(t, f.db.Create(&o).Error)
	}
	mk(entity.StatusPending)
	mk(entity.StatusPreparing)
	mk(entity.StatusDelivered)
	mk(entity.StatusCancelled)

	counts := map[string]int{"active": 2, "completed": 1, "cancelled": 1, "all": 4}
	for view, want := range counts {
		out, err := f.orderSvc.ListForBusiness(f.owner.ID, f.business.ID, view, 1, 20)
		require.NoError(t, err, view)
		assert.Len(t, out.Items, want, view)
		assert.Equal(t, int64(want), out.Total, view)
	}
}

func TestDashboardStats(t *testing.T) {
	f, _ := newFixtures(t)

	mk := func(status string, total int64) {
		o := entity.Order{
			BusinessID: f.business.ID, CustomerName: "x", CustomerPhone: "11987654321",
			OrderType: entity.OrderTypeLocal, Status: status, Total: total,
		}
		require.NoError(t, f.db.Create(&o).Error)
	}
	mk(entity.StatusPending, 3000)
	mk(entity.StatusDelivered, 5000)
	mk(entity.StatusCancelled, 9000) // cancelled revenue never counts

	st, err := f.orderSvc.StatsForBusiness(f.owner.ID, f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.TodayOrders)
	assert.Equal(t, int64(8000), st.TodayRevenue)
	assert.Equal(t, int64(1), st.PendingOrders)
}
