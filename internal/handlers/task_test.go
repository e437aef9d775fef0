package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/febarreras/agenda-escolar-api/internal/constants"
	"github.com/febarreras/agenda-escolar-api/internal/database"
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/febarreras/agenda-escolar-api/internal/repository"
	"github.com/febarreras/agenda-escolar-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewTaskHandler(services.NewTaskService(taskRepo, userRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestUser(email string, rol models.UserRol) *models.User {
	user := &models.User{
		Nombre:       "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		Rol:          rol,
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(titulo, fecha string, tipo models.TaskTipo, ownerID uint64) *models.Task {
	task := &models.Task{
		Titulo:      titulo,
		Descripcion: "Test Description",
		Fecha:       fecha,
		Tipo:        tipo,
		Estatus:     models.EstatusPendiente,
		UsuarioID:   ownerID,
	}
	suite.db.Create(task)
	return task
}

// Helper function to create authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (suite *TaskHandlerTestSuite) TestListTareasEstudianteSeesGrupales() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	other := suite.createTestUser("other@demo.edu", models.RolEstudiante)

	suite.createTestTask("propia", "2026-09-03", models.TipoPersonal, student.ID)
	suite.createTestTask("grupal ajena", "2026-09-01", models.TipoGrupal, other.ID)
	suite.createTestTask("grupal propia", "2026-09-02", models.TipoGrupal, student.ID)
	suite.createTestTask("personal ajena", "2026-09-04", models.TipoPersonal, other.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/tareas", nil, student.ID)
	suite.handler.ListTareas(c)

	suite.Equal(http.StatusOK, w.Code)

	var tasks []models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))

	// 2 owned + 1 foreign grupal, owned grupal counted once, fecha ascending
	suite.Require().Len(tasks, 3)
	suite.Equal("grupal ajena", tasks[0].Titulo)
	suite.Equal("grupal propia", tasks[1].Titulo)
	suite.Equal("propia", tasks[2].Titulo)
}

func (suite *TaskHandlerTestSuite) TestListTareasDocenteSeesOnlyOwned() {
	teacher := suite.createTestUser("teacher@demo.edu", models.RolDocente)
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)

	suite.createTestTask("del docente", "2026-09-02", models.TipoPersonal, teacher.ID)
	suite.createTestTask("grupal de estudiante", "2026-09-01", models.TipoGrupal, student.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/tareas", nil, teacher.ID)
	suite.handler.ListTareas(c)

	suite.Equal(http.StatusOK, w.Code)

	var tasks []models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))
	suite.Require().Len(tasks, 1)
	suite.Equal("del docente", tasks[0].Titulo)
}

func (suite *TaskHandlerTestSuite) TestCreateTarea() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)

	body, _ := json.Marshal(map[string]string{
		"titulo":      "Entregar ensayo",
		"descripcion": "Capítulos 1-3",
		"fecha":       "2026-09-15",
		"tipo":        "personal",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/tareas", body, student.ID)
	suite.handler.CreateTarea(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotZero(response["id"])

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, uint64(response["id"].(float64))).Error)
	suite.Equal("Entregar ensayo", stored.Titulo)
	suite.Equal(models.EstatusPendiente, stored.Estatus)
	suite.Equal(student.ID, stored.UsuarioID)
}

func (suite *TaskHandlerTestSuite) TestUpdateTareaEstatusOnly() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	task := suite.createTestTask("Leer capítulo", "2026-09-10", models.TipoPersonal, student.ID)

	body, _ := json.Marshal(map[string]string{"estatus": "completada"})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tareas/1", body, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTarea(c)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal(models.EstatusCompletada, stored.Estatus)
	// everything else untouched
	suite.Equal("Leer capítulo", stored.Titulo)
	suite.Equal("Test Description", stored.Descripcion)
	suite.Equal("2026-09-10", stored.Fecha)
	suite.Equal(models.TipoPersonal, stored.Tipo)
}

func (suite *TaskHandlerTestSuite) TestUpdateTareaFullEditKeepsEstatus() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	task := suite.createTestTask("Leer capítulo", "2026-09-10", models.TipoPersonal, student.ID)
	suite.Require().NoError(suite.db.Model(task).Update("estatus", models.EstatusCompletada).Error)

	body, _ := json.Marshal(map[string]string{
		"titulo":      "Leer capítulos 2 y 3",
		"descripcion": "Edición nueva",
		"fecha":       "2026-09-12",
		"tipo":        "grupal",
	})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tareas/1", body, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTarea(c)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal("Leer capítulos 2 y 3", stored.Titulo)
	suite.Equal(models.TipoGrupal, stored.Tipo)
	// a full edit must not silently reset a completed tarea
	suite.Equal(models.EstatusCompletada, stored.Estatus)
}

func (suite *TaskHandlerTestSuite) TestUpdateTareaNotFound() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)

	body, _ := json.Marshal(map[string]string{"estatus": "completada"})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tareas/99", body, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	suite.handler.UpdateTarea(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTareaForeignOwner() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	other := suite.createTestUser("other@demo.edu", models.RolEstudiante)
	suite.createTestTask("ajena", "2026-09-10", models.TipoPersonal, other.ID)

	body, _ := json.Marshal(map[string]string{"estatus": "completada"})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tareas/1", body, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTarea(c)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTarea() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	task := suite.createTestTask("borrar", "2026-09-10", models.TipoPersonal, student.ID)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tareas/1", nil, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTarea(c)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTareaNonexistentIsIdempotent() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tareas/42", nil, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	suite.handler.DeleteTarea(c)

	suite.Equal(http.StatusOK, w.Code)

	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Eliminada", response["message"])

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTareaForeignOwner() {
	student := suite.createTestUser("student@demo.edu", models.RolEstudiante)
	other := suite.createTestUser("other@demo.edu", models.RolEstudiante)
	suite.createTestTask("ajena", "2026-09-10", models.TipoPersonal, other.ID)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tareas/1", nil, student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTarea(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(1), count)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
