package paytemplateerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
	ErrUnknownSection = apperror.New(
		apperror.CodeInvalidInput,
		"Section must be one of new-hires, leavers, increments",
		http.StatusBadRequest,
	)
)
