package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/aoc-solvers/internal/api/middleware"
	"github.com/povarna/aoc-solvers/internal/models"
	"github.com/povarna/aoc-solvers/internal/puzzle"
	"github.com/povarna/aoc-solvers/internal/runner"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type Catalog interface {
	Days() []int
	Describe() []models.PuzzleInfo
}

type Handler struct {
	executor Executor
	catalog  Catalog
	logger   *zerolog.Logger
}

func NewHandler(executor Executor, catalog Catalog, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		catalog:  catalog,
		logger:   logger,
	}
}

// POST /api/v1/solve
// Body: SolveRequest
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.solve(req.Request.Context(), resp, solveRequest)
}

// POST /api/v1/solve/day/{day}?part=N
func (h *Handler) SolveDay(req *restful.Request, resp *restful.Response) {
	day, err := strconv.Atoi(req.PathParameter("day"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("invalid day %q", req.PathParameter("day")), http.StatusBadRequest)
		return
	}

	part := models.PartBoth
	if partStr := req.QueryParameter("part"); partStr != "" {
		part, err = strconv.Atoi(partStr)
		if err != nil {
			middleware.HandleError(resp, fmt.Errorf("invalid part %q", partStr), http.StatusBadRequest)
			return
		}
	}

	var input DayInput
	if err := req.ReadEntity(&input); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.solve(req.Request.Context(), resp, models.SolveRequest{
		RequestID: input.RequestID,
		Day:       day,
		Part:      part,
		Lines:     input.Lines,
	})
}

func (h *Handler) solve(ctx context.Context, resp *restful.Response, solveRequest models.SolveRequest) {
	h.logger.Info().
		Str("request_id", solveRequest.RequestID).
		Int("day", solveRequest.Day).
		Int("part", solveRequest.Part).
		Int("lines", len(solveRequest.Lines)).
		Msg("Start solve")

	result, err := h.executor.Execute(ctx, solveRequest)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.catalog.Describe())
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
		Days:    h.catalog.Days(),
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, runner.ErrDayNotFound):
		return http.StatusNotFound
	case errors.Is(err, runner.ErrInvalidPart):
		return http.StatusBadRequest
	case puzzle.IsParseError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
