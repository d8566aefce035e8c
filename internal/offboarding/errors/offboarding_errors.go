package offboardingerrors

import (
	"net/http"

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
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Employment end date could not be parsed",
		http.StatusBadRequest,
	)
	ErrNotScheduled = apperror.New(
		apperror.CodeNotFound,
		"No scheduled offboarding for this employee",
		http.StatusNotFound,
	)
)
