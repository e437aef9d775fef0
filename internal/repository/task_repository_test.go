package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// mockDB wires GORM's mysql dialector over sqlmock so the exact SQL the
// repository emits can be asserted.
func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestListForUserEstudianteIncludesGrupales(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `tareas` WHERE usuario_id = ? OR tipo = ? ORDER BY fecha ASC",
	)).
		WithArgs(uint64(7), string(models.TipoGrupal)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "titulo", "descripcion", "fecha", "tipo", "estatus", "usuario_id"},
		).AddRow(1, "tarea", "", "2026-09-01", "grupal", "pendiente", 9))

	tasks, err := repo.ListForUser(7, models.RolEstudiante)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUserDocenteOwnedOnly(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `tareas` WHERE usuario_id = ? ORDER BY fecha ASC",
	)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "titulo", "descripcion", "fecha", "tipo", "estatus", "usuario_id"},
		))

	tasks, err := repo.ListForUser(3, models.RolDocente)
	require.NoError(t, err)
	require.Empty(t, tasks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEstatusOnlyTouchesOneColumn(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewTaskRepository(db)

	estatus := models.EstatusCompletada

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `tareas` SET `estatus`=? WHERE id = ?",
	)).
		WithArgs(string(estatus), uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(5, TaskPatch{Estatus: &estatus})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmptyPatchIssuesNoSQL(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewTaskRepository(db)

	require.NoError(t, repo.Update(5, TaskPatch{}))
	require.NoError(t, mock.ExpectationsWereMet())
}
