package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_PassesThroughMappedStatuses(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{BadGateway("upstream"), http.StatusBadGateway},
		{ServiceUnavailable("busy"), http.StatusServiceUnavailable},
		{GatewayTimeout("slow"), http.StatusGatewayTimeout},
	}

	for _, tc := range cases {
		got := From(tc.err)
		assert.Equal(t, tc.want, got.Status)
		assert.Equal(t, tc.err.Message, got.Message)
	}
}

func TestFrom_WrappedError(t *testing.T) {
	err := fmt.Errorf("service: %w", NotFound("Data not found"))

	got := From(err)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Data not found", got.Message)
}

func TestFrom_UnknownBecomesInternal(t *testing.T) {
	got := From(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, InternalMessage, got.Message)

	teapot := &Error{Status: http.StatusTeapot, Message: "teapot"}
	assert.Equal(t, http.StatusInternalServerError, From(teapot).Status)
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
	assert.Equal(t, http.StatusOK, StatusOf(nil))
}
