package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.SaleModel{},
		model.AdminCredentialModel{},
		model.UserModel{},
		model.SessionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
