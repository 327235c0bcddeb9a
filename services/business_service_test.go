package services

import (
	"testing"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMerchant(t *testing.T, f *fixtures, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Name: "Novo"}
	require.NoError(t, f.db.Create(&u).Error)
	return u
}

func TestOnboardCreatesBusinessWithStarterMenu(t *testing.T) {
	f, _ := newFixtures(t)
	u := newMerchant(t, f, "joao@example.com")

	b, err := f.bizSvc.Onboard(u.ID, &OnboardIn{BusinessName: "Pizzaria do João"})
	require.NoError(t, err)

	assert.Equal(t, "pizzaria-do-joao", b.Slug)
	assert.True(t, b.IsOpen)
	assert.Equal(t, int64(2500), b.MinOrder)
	assert.NotEmpty(t, b.PaymentMethods)

	var nCats, nProds, nAdds, nAreas int64
	require.NoError(t, f.db.Model(&entity.Category{}).Where("business_id = ?", b.ID).Count(&nCats).Error)
	require.NoError(t, f.db.Model(&entity.Product{}).Where("business_id = ?", b.ID).Count(&nProds).Error)
	require.NoError(t, f.db.Model(&entity.Additional{}).Where("business_id = ?", b.ID).Count(&nAdds).Error)
	require.NoError(t, f.db.Model(&entity.DeliveryArea{}).Where("business_id = ?", b.ID).Count(&nAreas).Error)
	assert.NotZero(t, nCats)
	assert.NotZero(t, nProds)
	assert.NotZero(t, nAdds)
	assert.NotZero(t, nAreas)
}

func TestOnboardSlugCollisionGetsSuffix(t *testing.T) {
	f, _ := newFixtures(t)

	u1 := newMerchant(t, f, "a@example.com")
	u2 := newMerchant(t, f, "b@example.com")
	u3 := newMerchant(t, f, "c@example.com")

	b1, err := f.bizSvc.Onboard(u1.ID, &OnboardIn{BusinessName: "Cantina da Nona"})
	require.NoError(t, err)
	b2, err := f.bizSvc.Onboard(u2.ID, &OnboardIn{BusinessName: "Cantina da Nona"})
	require.NoError(t, err)
	b3, err := f.bizSvc.Onboard(u3.ID, &OnboardIn{BusinessName: "Cantina da Nona!!!"})
	require.NoError(t, err)

	assert.Equal(t, "cantina-da-nona", b1.Slug)
	assert.Equal(t, "cantina-da-nona-1", b2.Slug)
	assert.Equal(t, "cantina-da-nona-2", b3.Slug)
}

func TestOnboardOncePerUser(t *testing.T) {
	f, _ := newFixtures(t)

	_, err := f.bizSvc.Onboard(f.owner.ID, &OnboardIn{BusinessName: "Segunda Loja"})
	assert.ErrorIs(t, err, ErrAlreadyOnboarded)
}

func TestUpdateSettingsPartialPatch(t *testing.T) {
	f, _ := newFixtures(t)

	minOrder := int64(4000)
	closed := false
	b, err := f.bizSvc.UpdateSettings(f.owner.ID, &SettingsIn{
		MinOrder: &minOrder,
		IsOpen:   &closed,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4000), b.MinOrder)
	assert.False(t, b.IsOpen)
	// untouched fields keep their values, the slug never moves
	assert.Equal(t, "Burgueria Teste", b.BusinessName)
	assert.Equal(t, "burgueria-teste", b.Slug)

	bad := int64(-100)
	b, err = f.bizSvc.UpdateSettings(f.owner.ID, &SettingsIn{MinOrder: &bad})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), b.MinOrder, "negative values are ignored")

	nobody := newMerchant(t, f, "semnada@example.com")
	_, err = f.bizSvc.UpdateSettings(nobody.ID, &SettingsIn{MinOrder: &minOrder})
	assert.ErrorIs(t, err, ErrNoBusiness)
}

func TestGetMenuFiltersDisabled(t *testing.T) {
	f, _ := newFixtures(t)

	hidden := entity.Product{
		BusinessID: f.business.ID, CategoryID: f.burger.CategoryID,
		Name: "Fora do cardápio", Price: 1000, Enabled: false,
	}
	require.NoError(t, f.db.Create(&hidden).Error)

	m, err := f.bizSvc.GetMenu(f.business.Slug)
	require.NoError(t, err)

	assert.Equal(t, f.business.ID, m.Business.ID)
	for _, p := range m.Products {
		assert.True(t, p.Enabled)
		assert.NotEqual(t, hidden.ID, p.ID)
	}
	assert.Len(t, m.Products, 2)
	assert.Len(t, m.Additionals, 2)
	assert.Len(t, m.DeliveryAreas, 1)
}
