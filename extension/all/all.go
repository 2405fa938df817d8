// Package all imports all built-in pathcch extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/pathcch/extension/core"
	_ "github.com/jpl-au/pathcch/extension/path"
)
