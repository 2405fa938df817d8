// context.go defines the Context interface for extension access to pathcch
// internals.
//
// Design: Context is an interface so MCP handlers can be tested with a
// context built from an in-memory config.

package extension

import (
	"github.com/jpl-au/pathcch/internal/config"
	"github.com/jpl-au/pathcch/internal/service"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Service returns the path service.
	Service() service.Service

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

// Service returns the path service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
