package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnermostCode(t *testing.T) {
	base := NotFound("story")
	wrapped := Wrapf(base, "loading story %s", "abc")

	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.Equal(t, "loading story abc: story not found", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk on fire"), "reading series")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, fmt.Errorf("steps must be positive"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "steps must be positive", err.(*AppError).Message)

	recoded := WithCode(CodeValidationError, ConfigInvalid("bad port"))
	assert.Equal(t, CodeValidationError, GetCode(recoded))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{InvalidInput("x"), http.StatusBadRequest},
		{ValidationError("x"), http.StatusBadRequest},
		{Wrap(NotFound("story"), "lookup"), http.StatusNotFound},
		{MethodNotAllowed("GET"), http.StatusMethodNotAllowed},
		{ConfigInvalid("x"), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "%v", tc.err)
	}
}

func TestMethodNotAllowedMessage(t *testing.T) {
	assert.Equal(t, "Method DELETE Not Allowed", MethodNotAllowed("DELETE").Error())
}
