package main

import (
	"vesselwatch/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into internal/infra/persistence/postgres/query.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.AllModels()...)

	g.Execute()
}
