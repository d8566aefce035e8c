package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hradmin/internal/employee"
	employeeerrors "hradmin/internal/employee/errors"
	"hradmin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	getFullFn      func(ctx context.Context, id string) (employee.FullProfileResponse, error)
	getHistoryFn   func(ctx context.Context, id string) ([]employee.FieldUpdateResponse, error)
	updateFieldFn  func(ctx context.Context, id string, field string, newValue *string, reason *string) (employee.UpdateFieldResponse, error)
	updateFieldsFn func(ctx context.Context, id string, updates []employee.FieldChange, reason *string) (employee.BulkUpdateResponse, error)
	updateStatusFn func(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.StatusResponse, error)
}

func (f *fakeEmployeeService) GetFull(ctx context.Context, id string) (employee.FullProfileResponse, error) {
	return f.getFullFn(ctx, id)
}
func (f *fakeEmployeeService) GetHistory(ctx context.Context, id string) ([]employee.FieldUpdateResponse, error) {
	return f.getHistoryFn(ctx, id)
}
func (f *fakeEmployeeService) UpdateField(ctx context.Context, id string, field string, newValue *string, reason *string) (employee.UpdateFieldResponse, error) {
	return f.updateFieldFn(ctx, id, field, newValue, reason)
}
func (f *fakeEmployeeService) UpdateFields(ctx context.Context, id string, updates []employee.FieldChange, reason *string) (employee.BulkUpdateResponse, error) {
	return f.updateFieldsFn(ctx, id, updates, reason)
}
func (f *fakeEmployeeService) UpdateStatus(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.StatusResponse, error) {
	return f.updateStatusFn(ctx, id, req)
}

func patchRequest(t *testing.T, path, body string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return w, c
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("single field payload routes to UpdateField", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFieldFn: func(ctx context.Context, id string, field string, newValue *string, reason *string) (employee.UpdateFieldResponse, error) {
				assert.Equal(t, "101", id)
				assert.Equal(t, "Department", field)
				assert.Equal(t, "Design", *newValue)
				return employee.UpdateFieldResponse{Field: field, NewValue: newValue, Changed: true}, nil
			},
		}

		w, c := patchRequest(t, "/employees/101/update", `{"field":"Department","new_value":"Design"}`)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"changed":true`)
	})

	t.Run("updates array routes to UpdateFields", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFieldsFn: func(ctx context.Context, id string, updates []employee.FieldChange, reason *string) (employee.BulkUpdateResponse, error) {
				assert.Len(t, updates, 2)
				return employee.BulkUpdateResponse{AppliedCount: 1}, nil
			},
		}

		body := `{"updates":[{"field":"Department","new_value":"Design"},{"field":"Full_Name","new_value":"A"}]}`
		w, c := patchRequest(t, "/employees/101/update", body)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"applied_count":1`)
	})

	t.Run("missing field and updates is 400", func(t *testing.T) {
		w, c := patchRequest(t, "/employees/101/update", `{}`)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(&fakeEmployeeService{}).Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFieldFn: func(ctx context.Context, id string, field string, newValue *string, reason *string) (employee.UpdateFieldResponse, error) {
				return employee.UpdateFieldResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		w, c := patchRequest(t, "/employees/999/update", `{"field":"Department","new_value":"Design"}`)
		c.Params = gin.Params{{Key: "id", Value: "999"}}

		employee.NewHandler(svc).Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"message"`)
	})
}

func TestEmployeeHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateStatusFn: func(ctx context.Context, id string, req employee.UpdateStatusRequest) (employee.StatusResponse, error) {
				assert.Equal(t, "Resigned", req.Status)
				return employee.StatusResponse{EmployeeID: 101, EmploymentStatus: "Resigned", LifecycleStatus: "Resigned"}, nil
			},
		}

		w, c := patchRequest(t, "/employees/101/status", `{"status":"Resigned","employment_end_date":"2025-02-28"}`)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(svc).UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing status is 400 with a readable field name", func(t *testing.T) {
		apperror.Init()
		w, c := patchRequest(t, "/employees/101/status", `{}`)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(&fakeEmployeeService{}).UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Status is required")
	})
}

func TestEmployeeHandler_GetHistory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getHistoryFn: func(ctx context.Context, id string) ([]employee.FieldUpdateResponse, error) {
				return []employee.FieldUpdateResponse{{EmployeeID: 101, FieldName: "Department", UpdatedBy: "admin"}}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/101/history", nil)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		employee.NewHandler(svc).GetHistory(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Department")
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getHistoryFn: func(ctx context.Context, id string) ([]employee.FieldUpdateResponse, error) {
				return nil, employeeerrors.ErrInvalidEmployeeID
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc/history", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		employee.NewHandler(svc).GetHistory(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
