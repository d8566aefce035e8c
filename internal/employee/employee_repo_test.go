package employee_test

import (
	"context"
	"testing"
	"time"

	"hradmin/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return employee.NewRepository(gormDB), mock
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	t.Run("soft-deleted rows are filtered", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "Employees" WHERE "Employee_ID" = \$1 AND \("Is_Deleted" IS NULL OR "Is_Deleted" = FALSE\)`).
			WithArgs(int64(101), 1).
			WillReturnRows(sqlmock.NewRows([]string{"Employee_ID", "Full_Name", "Department"}).
				AddRow(int64(101), "Ayesha Khan", "Engineering"))

		emp, err := repo.FindByID(context.Background(), 101)

		assert.NoError(t, err)
		assert.Equal(t, int64(101), emp.EmployeeID)
		assert.Equal(t, "Ayesha Khan", *emp.FullName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns gorm not found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT \* FROM "Employees"`).
			WillReturnRows(sqlmock.NewRows([]string{"Employee_ID"}))

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestEmployeeRepository_UpdateFields(t *testing.T) {
	t.Run("builds one multi-column statement", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(`UPDATE "Employees" SET "Department" = \$1, "Full_Name" = \$2, "Updated_At" = \$3, "Updated_By" = \$4 WHERE "Employee_ID" = \$5`).
			WithArgs("Design", "Ayesha A. Khan", sqlmock.AnyArg(), "admin", int64(101)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		dept := "Design"
		name := "Ayesha A. Khan"
		err := repo.UpdateFields(context.Background(), 101, []employee.AcceptedChange{
			{Field: employee.FieldDepartment, NewValue: &dept},
			{Field: employee.FieldFullName, NewValue: &name},
		}, "admin")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no changes is a no-op", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		err := repo.UpdateFields(context.Background(), 101, nil, "admin")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("date field passes parsed value", func(t *testing.T) {
		repo, mock := setupRepoTest(t)

		mock.ExpectExec(`UPDATE "Employees" SET "Joining_Date" = \$1`).
			WithArgs(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), sqlmock.AnyArg(), "admin", int64(101)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		joined := "2025-01-10"
		err := repo.UpdateFields(context.Background(), 101, []employee.AcceptedChange{
			{Field: employee.FieldJoiningDate, NewValue: &joined},
		}, "admin")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_ListFieldUpdates(t *testing.T) {
	repo, mock := setupRepoTest(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM "Employee_Field_Updates"`).
		WithArgs(int64(101), 100).
		WillReturnRows(sqlmock.NewRows([]string{"Employee_ID", "Field_Name", "Old_Value", "New_Value", "Updated_Date", "Updated_By"}).
			AddRow(int64(101), "Department", "Engineering", "Design", now, "admin").
			AddRow(int64(101), "Full_Name", nil, "Ayesha", now.Add(-time.Hour), "admin"))

	updates, err := repo.ListFieldUpdates(context.Background(), 101, 100)

	assert.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, "Department", updates[0].FieldName)
	assert.Nil(t, updates[1].OldValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
