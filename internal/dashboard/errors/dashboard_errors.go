package dashboarderrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var ErrInvalidMonth = apperror.New(
	apperror.CodeInvalidInput,
	"Month must be formatted as YYYY-MM",
	http.StatusBadRequest,
)
