package controllers

import (
	"strconv"

	"github.com/Sgonchar89/foodgram-project/errs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// abortWithError maps a service error onto the wire. Server faults get
// logged with the request path; client faults only travel back.
func abortWithError(c *gin.Context, err error) {
	status := errs.Status(err)
	if status >= 500 {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
