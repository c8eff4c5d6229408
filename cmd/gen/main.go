package main

import (
	"vtpgate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CarrierAccountModel{},
		model.CarrierStoreModel{},
		model.ShipmentModel{},
		model.StatusHistoryModel{},
		model.FulfillmentDocumentModel{},
		model.APIAuditModel{},
		model.VaultSettingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
