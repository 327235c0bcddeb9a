package services

import (
	"fmt"
	"testing"

	"github.com/igor-rodz/Projeto-delivery/entity"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Business{},
		&entity.Category{}, &entity.Product{},
		&entity.Additional{}, &entity.ProductAdditional{},
		&entity.DeliveryArea{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

type fixtures struct {
	db       *gorm.DB
	cartSvc  *CartService
	orderSvc *OrderService
	bizSvc   *BusinessService

	owner    entity.User
	business entity.Business
	burger   entity.Product
	soda     entity.Product
	bacon    entity.Additional
	cheese   entity.Additional
	area     entity.DeliveryArea
}

// recordingNotifier captures hub notifications for assertions.
type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Notify(businessID, orderID uint, action string) {
	n.events = append(n.events, fmt.Sprintf("%d/%d/%s", businessID, orderID, action))
}

func newFixtures(t *testing.T) (*fixtures, *recordingNotifier) {
	t.Helper()
	db := newTestDB(t)

	bizRepo := repository.NewBusinessRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	hub := &recordingNotifier{}
	f := &fixtures{
		db:       db,
		cartSvc:  NewCartService(db, cartRepo, catalogRepo),
		orderSvc: NewOrderService(db, orderRepo, cartRepo, catalogRepo, bizRepo, hub),
		bizSvc:   NewBusinessService(db, bizRepo, catalogRepo),
	}

	f.owner = entity.User{Email: "dono@example.com", Password: "x", Name: "Dono"}
	require.NoError(t, db.Create(&f.owner).Error)

	f.business = entity.Business{
		UserID:         f.owner.ID,
		BusinessName:   "Burgueria Teste",
		Slug:           "burgueria-teste",
		IsOpen:         true,
		MinOrder:       0,
		DeliveryFee:    500,
		PaymentMethods: []string{"Dinheiro", "PIX"},
	}
	require.NoError(t, db.Create(&f.business).Error)

	cat := entity.Category{BusinessID: f.business.ID, Name: "Lanches", SortOrder: 1, Enabled: true}
	require.NoError(t, db.Create(&cat).Error)

	f.burger = entity.Product{
		BusinessID: f.business.ID, CategoryID: cat.ID,
		Name: "Burger", Price: 2890, Enabled: true,
	}
	require.NoError(t, db.Create(&f.burger).Error)

	f.soda = entity.Product{
		BusinessID: f.business.ID, CategoryID: cat.ID,
		Name: "Refrigerante", Price: 590, Enabled: true,
	}
	require.NoError(t, db.Create(&f.soda).Error)

	f.bacon = entity.Additional{BusinessID: f.business.ID, Name: "Bacon", Price: 400, Enabled: true}
	require.NoError(t, db.Create(&f.bacon).Error)
	f.cheese = entity.Additional{BusinessID: f.business.ID, Name: "Queijo", Price: 300, Enabled: true}
	require.NoError(t, db.Create(&f.cheese).Error)

	f.area = entity.DeliveryArea{BusinessID: f.business.ID, Name: "Centro", Fee: 500, Enabled: true}
	require.NoError(t, db.Create(&f.area).Error)

	return f, hub
}

// otherBusiness seeds a second tenant with one product for cross-business
// scenarios.
func (f *fixtures) otherBusiness(t *testing.T) (entity.Business, entity.Product) {
	t.Helper()
	owner := entity.User{Email: "outra@example.com", Password: "x", Name: "Outra"}
	require.NoError(t, f.db.Create(&owner).Error)

	b := entity.Business{
		UserID: owner.ID, BusinessName: "Pizzaria Teste", Slug: "pizzaria-teste", IsOpen: true,
	}
	require.NoError(t, f.db.Create(&b).Error)

	cat := entity.Category{BusinessID: b.ID, Name: "Pizzas", SortOrder: 1, Enabled: true}
	require.NoError(t, f.db.Create(&cat).Error)

	p := entity.Product{BusinessID: b.ID, CategoryID: cat.ID, Name: "Margherita", Price: 4590, Enabled: true}
	require.NoError(t, f.db.Create(&p).Error)
	return b, p
}

func (f *fixtures) setMinOrder(t *testing.T, v int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&entity.Business{}).Where("id = ?", f.business.ID).
		Update("min_order", v).Error)
	f.business.MinOrder = v
}
