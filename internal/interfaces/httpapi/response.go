package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "hoops-league"

	internalErrorMessage = "internal server error"
)

// envelope follows the Google JSON style guide: data on success, error otherwise.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// statusResponse is the flat body of the scoring routes used by the scorer table.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type errorKind struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var (
	kindInternal = errorKind{http.StatusInternalServerError, "internalError", "INTERNAL"}

	errorKinds = []struct {
		target error
		kind   errorKind
	}{
		{usecase.ErrInvalidInput, errorKind{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
		{usecase.ErrNotFound, errorKind{http.StatusNotFound, "notFound", "NOT_FOUND"}},
		{usecase.ErrUnauthorized, errorKind{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
		{usecase.ErrConflict, errorKind{http.StatusConflict, "conflict", "ALREADY_EXISTS"}},
		{usecase.ErrDependencyUnavailable, errorKind{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
	}
)

// classify maps a usecase sentinel to its HTTP shape; anything else is internal.
func classify(err error) errorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return kindInternal
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: apiVersion, Data: data})
}

func writeStatus(w http.ResponseWriter, status int, body statusResponse) {
	writeJSON(w, status, body)
}

// writeError renders err in the envelope and records it on the active span.
// Internal errors never leak their text.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := classify(err)
	recordSpanError(ctx, err, kind.HTTPStatus)

	message := err.Error()
	if kind == kindInternal {
		message = internalErrorMessage
	}
	writeJSON(w, kind.HTTPStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    kind.HTTPStatus,
			Message: message,
			Status:  kind.Status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: kind.Reason, Message: message}},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New(internalErrorMessage))
}
