package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/aoc-solvers/internal/api/middleware"
	"github.com/povarna/aoc-solvers/internal/models"
)

const OpenAPIPath = "/api/v1/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List the registered puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes([]models.PuzzleInfo{}).
			Returns(200, "OK", []models.PuzzleInfo{}))

	ws.
		Route(ws.POST("/solve").
			To(handler.Solve).
			Doc("Solve a puzzle input").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Day Not Found", middleware.ErrorResponse{}).
			Returns(422, "Malformed Puzzle Input", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/solve/day/{day}").
			To(handler.SolveDay).
			Doc("Solve a puzzle input for one day").
			Metadata(restfulspec.KeyOpenAPITags, []string{"solve"}).
			Param(ws.PathParameter("day", "Puzzle day (1-7)").DataType("integer")).
			Param(ws.QueryParameter("part", "1 or 2; both parts when omitted").DataType("integer").Required(false)).
			Reads(DayInput{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Day Not Found", middleware.ErrorResponse{}).
			Returns(422, "Malformed Puzzle Input", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// NewContainer assembles the filters, the routes and the OpenAPI document.
func NewContainer(handler *Handler) *restful.Container {
	container := restful.NewContainer()

	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	return container
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "AoC 2023 Solver API",
			Description: "Advent of Code 2023 solvers for days 1 to 7",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "puzzles", Description: "Registered puzzles"}},
		{TagProps: spec.TagProps{Name: "solve", Description: "Solve operations"}},
	}
}
