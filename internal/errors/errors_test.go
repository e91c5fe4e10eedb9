package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByCode(t *testing.T) {
	err := InvalidParameter("gaussian: sigma must be positive, got %v", -1.0)

	assert.True(t, stderrors.Is(err, ErrInvalidParameter))
	assert.False(t, stderrors.Is(err, ErrDomainError))
	assert.Equal(t, "gaussian: sigma must be positive, got -1", err.Error())
}

func TestIs_ThroughWrapping(t *testing.T) {
	base := EmptySample("sample has no values")
	wrapped := fmt.Errorf("refresh uniform: %w", base)

	assert.True(t, stderrors.Is(wrapped, ErrEmptySample))
	assert.Equal(t, CodeEmptySample, GetCode(base))
	assert.Equal(t, "UNKNOWN", GetCode(wrapped))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	wrapped := Wrap(DomainError("x outside support"), "pdf failed")
	assert.Equal(t, CodeDomainError, GetCode(wrapped))
	assert.Equal(t, "pdf failed: x outside support", wrapped.Error())

	plain := Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, CodeInternalError, GetCode(plain))
	var appErr *AppError
	assert.True(t, stderrors.As(plain, &appErr))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("line 3: not a number"))
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}
