package onboardingerrors

import (
	"fmt"
	"net/http"
	"strings"

	"hradmin/internal/shared/apperror"
)

var (
	ErrSubmissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Submission not found",
		http.StatusNotFound,
	)
	ErrInvalidSubmissionID = apperror.New(
		apperror.CodeInvalidInput,
		"Submission ID must be a UUID",
		http.StatusBadRequest,
	)
	ErrDuplicateSubmission = apperror.New(
		apperror.CodeConflict,
		"Submission already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeRef = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must be numeric",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be pending, approved or rejected",
		http.StatusBadRequest,
	)
	ErrUnknownAttachment = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown attachment slot",
		http.StatusBadRequest,
	)
)

// MissingFields names every absent required field in one response.
func MissingFields(fields []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", ")),
		http.StatusBadRequest,
	)
}
