package rest

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrRebuildInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal errors behind a generic message.
func errorMessage(code int, err error) string {
	if code == http.StatusInternalServerError {
		return domain.ErrInternalServerError.Error()
	}
	return err.Error()
}
