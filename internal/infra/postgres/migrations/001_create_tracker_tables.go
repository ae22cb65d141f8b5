package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createTrackerTables creates the five tracker tables with their indexes.
func createTrackerTables() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_tracker_tables",
		Migrate: func(tx *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS areas (
					tag VARCHAR(50) PRIMARY KEY,
					major_area VARCHAR(20) NOT NULL
				);`,
				`CREATE TABLE IF NOT EXISTS gyms (
					name VARCHAR(100) PRIMARY KEY,
					profile_url VARCHAR(500),
					area_tag VARCHAR(50),
					tags TEXT[],
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);`,
				`CREATE TABLE IF NOT EXISTS schedules (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					gym_name VARCHAR(100) NOT NULL,
					start_date DATE NOT NULL,
					end_date DATE NOT NULL,
					post_url VARCHAR(500),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT chk_schedule_range CHECK (end_date >= start_date)
				);`,
				`CREATE TABLE IF NOT EXISTS activity_logs (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					date DATE NOT NULL,
					gym_name VARCHAR(100) NOT NULL,
					user_name VARCHAR(50) NOT NULL,
					type VARCHAR(10) NOT NULL,
					time_slot VARCHAR(10),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					CONSTRAINT chk_log_type CHECK (type IN ('planned', 'completed'))
				);`,
				`CREATE TABLE IF NOT EXISTS users (
					name VARCHAR(50) PRIMARY KEY,
					color VARCHAR(20),
					icon VARCHAR(20)
				);`,
			}

			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_gyms_area_tag ON gyms(area_tag);",
				"CREATE INDEX IF NOT EXISTS idx_schedules_gym_name ON schedules(gym_name);",
				"CREATE INDEX IF NOT EXISTS idx_schedules_end_date ON schedules(end_date DESC);",
				"CREATE INDEX IF NOT EXISTS idx_activity_logs_date ON activity_logs(date DESC);",
				"CREATE INDEX IF NOT EXISTS idx_activity_logs_gym_name ON activity_logs(gym_name);",
				"CREATE INDEX IF NOT EXISTS idx_activity_logs_user_name ON activity_logs(user_name);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			tables := []string{"activity_logs", "schedules", "gyms", "areas", "users"}
			for _, table := range tables {
				if err := tx.Exec("DROP TABLE IF EXISTS " + table + ";").Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
