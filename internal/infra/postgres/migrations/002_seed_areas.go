package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// seedAreas inserts the baseline area-tag to major-area mapping. Areas are
// append-only reference data; new tags are added with follow-up migrations
// or directly by an administrator.
func seedAreas() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_seed_areas",
		Migrate: func(tx *gorm.DB) error {
			return tx.Exec(`
				INSERT INTO areas (tag, major_area) VALUES
					('shinjuku', 'local'),
					('shibuya', 'local'),
					('setagaya', 'local'),
					('yokohama', 'regional'),
					('saitama', 'regional'),
					('osaka', 'nationwide'),
					('nagoya', 'nationwide')
				ON CONFLICT (tag) DO NOTHING;
			`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM areas;").Error
		},
	}
}
