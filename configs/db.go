package configs

import (
	"github.com/igor-rodz/Projeto-delivery/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema. ProductAdditional is migrated for schema parity
	// even though additionals are offered business-wide for now.
	db.AutoMigrate(
		&entity.User{},
		&entity.Business{},
		&entity.Category{}, &entity.Product{},
		&entity.Additional{}, &entity.ProductAdditional{},
		&entity.DeliveryArea{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
