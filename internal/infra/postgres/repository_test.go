package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gym-tracker-service/internal/domain"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connected GORM DB
//
// Prerequisites:
//   - Docker must be running
//   - OR skip tests with: go test -short
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgresContainer.Run(ctx,
		"postgres:16-alpine",
		postgresContainer.WithDatabase("testdb"),
		postgresContainer.WithUsername("testuser"),
		postgresContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container (is Docker running? use -short to skip): %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: nil, // Silent logger for tests
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(
		&AreaModel{}, &GymModel{}, &ScheduleModel{},
		&ActivityLogModel{}, &UserModel{},
	)
	require.NoError(t, err, "Failed to run migrations")

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

func testDate(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func TestSnapshot_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AppendGym(ctx, domain.Gym{
		Name:       "Boulder Base",
		ProfileURL: "https://example.com/boulder-base",
		AreaTag:    "shinjuku",
		Tags:       []string{"slab", "board"},
	}))
	require.NoError(t, repo.EnsureUsers(ctx, []domain.User{
		{Name: "ayaka", Color: "#ff6600", Icon: "🧗"},
	}))
	require.NoError(t, repo.AppendSchedules(ctx, []domain.Schedule{
		{GymName: "Boulder Base", StartDate: testDate("2024-02-25"), EndDate: testDate("2024-02-28")},
	}))

	logs := []domain.ActivityLog{
		{Date: testDate("2024-03-01"), GymName: "Boulder Base", UserName: "ayaka", Type: domain.LogTypeCompleted, TimeSlot: domain.TimeSlotEvening},
	}
	require.NoError(t, repo.AppendLogs(ctx, logs))
	assert.NotEmpty(t, logs[0].ID, "store must assign log ids")

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Gyms, 1)
	assert.Equal(t, "Boulder Base", snap.Gyms[0].Name)
	assert.Equal(t, []string{"slab", "board"}, snap.Gyms[0].Tags)

	require.Len(t, snap.Schedules, 1)
	assert.True(t, snap.Schedules[0].EndDate.Equal(testDate("2024-02-28")))

	require.Len(t, snap.Logs, 1)
	assert.Equal(t, domain.LogTypeCompleted, snap.Logs[0].Type)
	assert.Equal(t, domain.TimeSlotEvening, snap.Logs[0].TimeSlot)

	require.Len(t, snap.Users, 1)
	assert.Equal(t, "ayaka", snap.Users[0].Name)
}

func TestSnapshot_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(db)

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Gyms)
	assert.Empty(t, snap.Schedules)
	assert.Empty(t, snap.Logs)
	assert.Empty(t, snap.Users)
}

func TestDeleteLog(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	logs := []domain.ActivityLog{
		{Date: testDate("2024-03-01"), GymName: "Boulder Base", UserName: "ayaka", Type: domain.LogTypePlanned},
	}
	require.NoError(t, repo.AppendLogs(ctx, logs))

	require.NoError(t, repo.DeleteLog(ctx, logs[0].ID))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Logs)
}

func TestDeleteLog_MissingID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(db)

	err := repo.DeleteLog(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingLogID)
}

func TestEnsureUsers_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	users := []domain.User{{Name: "ayaka", Color: "#ff6600"}}
	require.NoError(t, repo.EnsureUsers(ctx, users))

	// Second run with a changed color must not overwrite the existing row.
	require.NoError(t, repo.EnsureUsers(ctx, []domain.User{{Name: "ayaka", Color: "#000000"}}))

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "#ff6600", snap.Users[0].Color)
}
