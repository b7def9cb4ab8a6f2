package response

import (
	"encoding/json"
	"net/http"
	"summit/shared/constant"
	"summit/shared/failure"
	"summit/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  *string `json:"error,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError maps err to its failure code and reason. Errors that are not failures
// are logged and answered with a generic message so driver or broker details stay server side.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	reason := failure.GetReason(err)
	message := err.Error()

	if !failure.IsFailure(err) {
		logger.ErrorWithStack(err)

		message = constant.ResponseErrorInternal
	}

	write(writer, code, Error{Error: &message, Reason: &reason})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
