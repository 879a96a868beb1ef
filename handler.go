package ftracker

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func status(err error) int {
	switch {
	case errors.Is(err, ErrUnknownWorkoutCode), errors.Is(err, ErrArityMismatch), errors.Is(err, ErrUnknownLanguage):
		return http.StatusBadRequest
	case errors.Is(err, ErrDivisionUndefined):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func abort(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request")
	c.AbortWithStatusJSON(status(err), gin.H{"error": err.Error()})
}

// SummaryHandler summarizes the package in the request body
func SummaryHandler(tracker *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg Package
		if err := c.ShouldBindJSON(&pkg); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sum, err := tracker.Summarize(pkg)
		if err != nil {
			abort(c, err)
			return
		}
		if lang := c.Query("lang"); lang != "" {
			msg, err := sum.Info.Localized(Language(lang))
			if err != nil {
				abort(c, err)
				return
			}
			sum.Message = msg
		}
		c.JSON(http.StatusOK, sum)
	}
}

// SummariesHandler summarizes all configured packages
func SummariesHandler(tracker *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sums, err := tracker.Summaries(c.Request.Context())
		if err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusOK, sums)
	}
}

// NewEngine returns an engine serving the tracker's summaries under the base path
func NewEngine(tracker *Tracker, base string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	grp := engine.Group(base)
	grp.POST("/summary", SummaryHandler(tracker))
	grp.GET("/summaries", SummariesHandler(tracker))
	grp.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
