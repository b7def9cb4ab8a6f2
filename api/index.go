// Package handler is the serverless entrypoint. The service graph is built once per instance.
package handler

import (
	"net/http"
	"summit/config"
	"summit/di"
	"summit/shared/logger"
	"summit/transport/http/response"
	"sync"
)

var (
	once    sync.Once
	service http.Handler
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		service, initErr = di.InitializeService()
	})

	if initErr != nil {
		logger.ErrorWithStack(initErr)
		response.WithUnhealthy(w)

		return
	}

	r.RequestURI = r.URL.String()
	service.ServeHTTP(w, r)
}
