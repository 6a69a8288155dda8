package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Logger logs every request once the chain has produced a response.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}

// RecoverPanic turns a panicking handler into a 500 response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			HandleError(resp, nil, http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}

func HandleError(resp *restful.Response, err error, status int) {
	message := http.StatusText(status)
	if err != nil {
		message = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{Error: message, Status: status}); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
