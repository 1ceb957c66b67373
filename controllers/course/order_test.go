package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"educa/config"
	controllers "educa/controllers/course"
	"educa/database"
	"educa/middleware"
	"educa/models"
	course "educa/models/course"
	"educa/store"
	validators "educa/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires a test database into the global handle and builds a fiber
// app exposing only the reorder endpoints
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := filepath.Join(t.TempDir(), "educa_http_test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/manage/order/modules", middleware.JWTMiddleware, validators.ReorderPayload(), controllers.ModuleOrder)
	app.Post("/manage/order/contents", middleware.JWTMiddleware, validators.ReorderPayload(), controllers.ContentOrder)
	return app
}

func createUser(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Instructor", Email: email, Password: "secret"}
	require.NoError(t, database.Database.Db.Create(u).Error)
	return u
}

func createCourseWithModules(t *testing.T, ownerID uint, count int) (uint, []uint) {
	t.Helper()
	db := database.Database.Db

	subject := course.Subject{Title: "Testing", Slug: fmt.Sprintf("testing-%d", ownerID)}
	require.NoError(t, db.Create(&subject).Error)

	c := course.Course{OwnerID: ownerID, SubjectID: subject.ID, Title: "Course", Slug: fmt.Sprintf("course-%d", ownerID)}
	require.NoError(t, db.Create(&c).Error)

	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		m := &course.Module{CourseID: c.ID, Title: fmt.Sprintf("Module %d", i)}
		require.NoError(t, store.CreateModule(db, m))
		ids = append(ids, m.ID)
	}
	return c.ID, ids
}

func authedRequest(t *testing.T, user *models.User, path string, body []byte) *http.Request {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestModuleOrderEndpointAppliesBatch(t *testing.T) {
	app := setupApp(t)
	owner := createUser(t, "owner@educa.test")
	courseID, ids := createCourseWithModules(t, owner.ID, 3)

	payload, err := json.Marshal(map[string]int{
		fmt.Sprint(ids[0]): 2,
		fmt.Sprint(ids[1]): 0,
		fmt.Sprint(ids[2]): 1,
	})
	require.NoError(t, err)

	resp, err := app.Test(authedRequest(t, owner, "/manage/order/modules", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Saved string `json:"saved"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.Equal(t, "OK", body.Data.Saved)

	modules, err := store.ListModulesByCourse(database.Database.Db, courseID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.Equal(t, ids[1], modules[0].ID)
	assert.Equal(t, ids[2], modules[1].ID)
	assert.Equal(t, ids[0], modules[2].ID)
}

func TestModuleOrderEndpointSkipsForeignModules(t *testing.T) {
	app := setupApp(t)
	owner := createUser(t, "owner2@educa.test")
	intruder := createUser(t, "intruder@educa.test")
	_, ids := createCourseWithModules(t, owner.ID, 2)

	payload, err := json.Marshal(map[string]int{
		fmt.Sprint(ids[0]): 9,
		fmt.Sprint(ids[1]): 8,
	})
	require.NoError(t, err)

	// The intruder's batch succeeds but changes nothing
	resp, err := app.Test(authedRequest(t, intruder, "/manage/order/modules", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m, err := store.GetModule(database.Database.Db, ids[0])
	require.NoError(t, err)
	require.NotNil(t, m.OrderIndex)
	assert.Equal(t, 0, *m.OrderIndex)
}

func TestModuleOrderEndpointRejectsMalformedPayload(t *testing.T) {
	app := setupApp(t)
	owner := createUser(t, "owner3@educa.test")
	_, ids := createCourseWithModules(t, owner.ID, 1)

	cases := []string{
		`{"` + fmt.Sprint(ids[0]) + `": "first"}`, // non-integer order
		`{"abc": 1}`,                              // non-numeric id
		`{"` + fmt.Sprint(ids[0]) + `": -1}`,      // negative order
		`[1, 2, 3]`,                               // not an object
		`not json`,
	}

	for _, raw := range cases {
		resp, err := app.Test(authedRequest(t, owner, "/manage/order/modules", []byte(raw)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", raw)
	}

	// Nothing was written by the rejected batches
	m, err := store.GetModule(database.Database.Db, ids[0])
	require.NoError(t, err)
	require.NotNil(t, m.OrderIndex)
	assert.Equal(t, 0, *m.OrderIndex)
}

func TestOrderEndpointsRequireAuth(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/manage/order/modules", bytes.NewReader([]byte(`{"1": 0}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestContentOrderEndpointAppliesBatch(t *testing.T) {
	app := setupApp(t)
	owner := createUser(t, "owner4@educa.test")
	_, ids := createCourseWithModules(t, owner.ID, 1)
	db := database.Database.Db

	var contents [2]*course.Content
	for i := range contents {
		text := &course.Text{ItemBase: course.ItemBase{OwnerID: owner.ID, Title: "Note"}, Body: "x"}
		ct, err := store.CreateContentWithItem(db, ids[0], text, nil)
		require.NoError(t, err)
		contents[i] = ct
	}

	payload, err := json.Marshal(map[string]int{
		fmt.Sprint(contents[0].ID): 1,
		fmt.Sprint(contents[1].ID): 0,
	})
	require.NoError(t, err)

	resp, err := app.Test(authedRequest(t, owner, "/manage/order/contents", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := store.ListContentsByModule(db, ids[0])
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, contents[1].ID, got[0].ID)
	assert.Equal(t, contents[0].ID, got[1].ID)
}

func TestReorderBatchIsAudited(t *testing.T) {
	app := setupApp(t)
	owner := createUser(t, "owner5@educa.test")
	_, ids := createCourseWithModules(t, owner.ID, 2)

	payload, err := json.Marshal(map[string]int{
		fmt.Sprint(ids[0]): 1,
		fmt.Sprint(ids[1]): 0,
	})
	require.NoError(t, err)

	resp, err := app.Test(authedRequest(t, owner, "/manage/order/modules", payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry course.OrderChangeLog
	require.NoError(t, database.Database.Db.
		Where("actor_id = ? AND scope = ?", owner.ID, course.OrderScopeModule).
		First(&entry).Error)
	assert.JSONEq(t, string(payload), string(entry.Payload))
}
