package store_test

import (
	"path/filepath"
	"testing"

	"educa/database"
	"educa/models"
	course "educa/models/course"
	"educa/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database and migrates the full schema
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "educa_test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

// seedCourse creates an owner, a subject and a course in one go and returns
// the owner id and course id
func seedCourse(t *testing.T, db *gorm.DB, ownerEmail string) (uint, uint) {
	t.Helper()

	owner := models.User{Name: "Instructor", Email: ownerEmail, Password: "secret"}
	require.NoError(t, db.Create(&owner).Error)

	subject := course.Subject{Title: "Programming", Slug: "programming-" + ownerEmail}
	require.NoError(t, db.Create(&subject).Error)

	c := course.Course{
		OwnerID:   owner.ID,
		SubjectID: subject.ID,
		Title:     "Go Basics",
		Slug:      "go-basics-" + ownerEmail,
		Overview:  "An introduction",
	}
	require.NoError(t, db.Create(&c).Error)

	return owner.ID, c.ID
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, title string) *course.Module {
	t.Helper()

	m := &course.Module{CourseID: courseID, Title: title}
	require.NoError(t, store.CreateModule(db, m))
	return m
}

func orderOf(t *testing.T, m *course.Module) int {
	t.Helper()
	require.NotNil(t, m.OrderIndex)
	return *m.OrderIndex
}
