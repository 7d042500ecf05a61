// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/alessandro-aglietti/rospkg/internal/adapters/cache"
	_ "github.com/alessandro-aglietti/rospkg/internal/adapters/config"
	_ "github.com/alessandro-aglietti/rospkg/internal/adapters/fs"
	_ "github.com/alessandro-aglietti/rospkg/internal/adapters/logger"
	_ "github.com/alessandro-aglietti/rospkg/internal/adapters/manifest"
	// Register app and engine nodes.
	_ "github.com/alessandro-aglietti/rospkg/internal/app"
	_ "github.com/alessandro-aglietti/rospkg/internal/engine/registry"
)
