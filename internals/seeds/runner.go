package seeds

import (
	"gorm.io/gorm"

	demo "runcrew_backend/internals/seeds/demo"
)

// RunAllSeeds fills a fresh database with demo data.
// Usage: call from a one-off main with configs.InitSeederDB().
func RunAllSeeds(db *gorm.DB) {
	demo.SeedDemoCrew(db)
}
