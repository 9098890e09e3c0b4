package http

import (
	"github.com/gin-gonic/gin"

	"meeting-conflict-resolver/internal/resolution"
	"meeting-conflict-resolver/pkg/datemath"
	"meeting-conflict-resolver/pkg/log"
)

// Handler is the public interface for the resolution HTTP delivery layer.
type Handler interface {
	Resolve(c *gin.Context)
	ResolveDirect(c *gin.Context)
}

// Defaults are applied when a request omits the corresponding field.
type Defaults struct {
	Mode           resolution.Mode
	Prioritization resolution.Prioritization
	WindowDays     int
}

type handler struct {
	l        log.Logger
	uc       resolution.UseCase
	dateMath *datemath.Parser
	defaults Defaults
}

// New creates a new HTTP handler for the resolution domain.
func New(l log.Logger, uc resolution.UseCase, dateMath *datemath.Parser, defaults Defaults) *handler {
	if defaults.Mode == "" {
		defaults.Mode = resolution.ModePropose
	}
	if defaults.Prioritization == "" {
		defaults.Prioritization = resolution.PrioritizationOracle
	}
	if defaults.WindowDays <= 0 {
		defaults.WindowDays = 7
	}
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		defaults: defaults,
	}
}
