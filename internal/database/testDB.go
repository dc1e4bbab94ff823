package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "CareerCompass-backend/internal/model"
	"CareerCompass-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded users and plans for handler tests
var (
	TestAdminUser   m.User
	TestUserMember1 m.User
	TestUserMember2 m.User

	// Plain password shared by all seeded users
	TestSeedPassword = "SeedPass123!"

	TestPlan1 m.CareerPlan
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample member and admin users plus a starter career plan if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	userSpecs := []struct {
		username string
		email    string
		role     string
	}{
		{"member_1", "member1@example.com", m.RoleMember},
		{"member_2", "member2@example.com", m.RoleMember},
		{"admin_user", "admin@example.com", m.RoleAdmin},
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		email := s.email
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    &email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		switch u.Username {
		case "member_1":
			TestUserMember1 = u
		case "member_2":
			TestUserMember2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	plan := m.CareerPlan{
		UserID:      TestUserMember1.ID,
		Title:       "Land a backend role",
		Description: "Plan for the upcoming application season",
		Milestones: []m.Milestone{
			{
				Title:       "Refresh resume",
				Description: "Update projects and skills sections",
				TargetDate:  time.Now().AddDate(0, 0, 7),
			},
			{
				Title:       "Finish system design course",
				Description: "Complete remaining modules",
				TargetDate:  time.Now().AddDate(0, 1, 0),
			},
		},
	}
	if err := db.Create(&plan).Error; err != nil {
		return err
	}
	TestPlan1 = plan

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"member_1", "member_2", "admin_user",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "member_1":
			TestUserMember1 = u
		case "member_2":
			TestUserMember2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}

	if err := db.Preload("Milestones").
		Where("user_id = ?", TestUserMember1.ID).
		First(&TestPlan1).Error; err != nil {
		_ = db.Preload("Milestones").First(&TestPlan1).Error
	}

	return nil
}
