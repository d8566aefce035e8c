package onboarding

import (
	"errors"
	"strings"

	onboardingerrors "hradmin/internal/onboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "pk_onboarding_submissions" {
			return onboardingerrors.ErrDuplicateSubmission
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "onboarding_submissions") {
		return onboardingerrors.ErrDuplicateSubmission
	}

	return err
}
