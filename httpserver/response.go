package httpserver

import (
	"movielobby/errs"
)

var errInvalidBody = errs.Errorf(errs.EINVALID, "Invalid request body")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
