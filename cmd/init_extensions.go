/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that builds
// the path service from config and hands it to extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. The service is created once and shared across
// all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/internal/config"
	"github.com/jpl-au/pathcch/internal/service"
)

// Loaded in Execute. cfgErr is reported by the first command that needs it.
var (
	cfg    *config.Config
	cfgErr error
)

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the path service and injects it into extensions.
func initExtensions() error {
	initOnce.Do(func() {
		if cfgErr != nil {
			initErr = cfgErr
			return
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		svc := service.New(service.Options{Author: author, Source: "path"})
		extContext = extension.NewContext(svc, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Ext returns the shared extension context. Only valid once a command's
// PersistentPreRunE has run.
func Ext() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
