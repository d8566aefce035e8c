package employeeerrors

import (
	"fmt"
	"net/http"
	"strings"

	"hradmin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must be an integer",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Employment status must be one of Active, Resigned, Terminated",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Employment end date could not be parsed",
		http.StatusBadRequest,
	)
	ErrNoUpdates = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field update is required",
		http.StatusBadRequest,
	)
)

// InvalidDateValue rejects a date field value no layout could parse.
func InvalidDateValue(field, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Value %q for field %q is not a recognizable date", value, field),
		http.StatusBadRequest,
	)
}

// InvalidField names the allowed set so callers can self-correct.
func InvalidField(field string, allowed []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Field %q is not updatable; allowed fields: %s", field, strings.Join(allowed, ", ")),
		http.StatusBadRequest,
	)
}
