package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkarpov/metricserve/internal/app/server/render"
)

type Handler struct {
	serializer *render.Serializer
}

func NewHandler(serializer *render.Serializer) *Handler {
	return &Handler{serializer: serializer}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/metrics", h.metricsHandler)
	router.GET("/ping", h.pingHandler)
}

// metricsHandler renders the full snapshot. Query parameters:
//
//	class        name-prefix filter ("jvm" selects the process section)
//	pretty       indent the output
//	full-samples include raw reservoir samples
func (h *Handler) metricsHandler(c *gin.Context) {
	opts := render.Options{
		Class:           c.Query("class"),
		Pretty:          queryBool(c, "pretty"),
		ShowFullSamples: queryBool(c, "full-samples"),
	}

	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	if err := h.serializer.WriteSnapshot(c.Writer, opts); err != nil {
		// The status line is already out; the render is dropped and the
		// error surfaces through gin's error log.
		_ = c.Error(err)
	}
}

func (h *Handler) pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// queryBool mirrors lenient boolean parsing: anything unparseable,
// including absence, is false.
func queryBool(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}
