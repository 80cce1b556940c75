package app

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	if IsInvalidRequestError(stdErr) {
		t.Error("simple error reported as invalid request")
	}

	irErr := InvalidRequestError("invalid request")
	if !IsInvalidRequestError(irErr) {
		t.Error("invalid request error not reported as invalid request")
	}

	wrapperErr := errors.Wrap(irErr, "wrapping message")
	if !IsInvalidRequestError(wrapperErr) {
		t.Error("wrapped invalid request error not reported as invalid request")
	}
}

func TestIsProjectNotReadyError(t *testing.T) {
	stdErr := errors.New("simple error")
	if IsProjectNotReadyError(stdErr) {
		t.Error("simple error reported as project not ready")
	}

	nrErr := ProjectNotReadyError("project not ready")
	if !IsProjectNotReadyError(nrErr) {
		t.Error("project not ready error not reported as project not ready")
	}

	wrapperErr := errors.Wrap(nrErr, "wrapping message")
	if !IsProjectNotReadyError(wrapperErr) {
		t.Error("wrapped project not ready error not reported as project not ready")
	}
}

func TestIsTooManyRequestsError(t *testing.T) {
	stdErr := errors.New("simple error")
	if IsTooManyRequestsError(stdErr) {
		t.Error("simple error reported as too many requests")
	}

	tmErr := TooManyRequestsError("too many requests")
	if !IsTooManyRequestsError(tmErr) {
		t.Error("too many requests error not reported as too many requests")
	}

	wrapperErr := errors.Wrap(tmErr, "wrapping message")
	if !IsTooManyRequestsError(wrapperErr) {
		t.Error("wrapped too many requests error not reported as too many requests")
	}
}
