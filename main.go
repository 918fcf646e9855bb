package main

import (
	"github.com/tahfiz/listening/internal/config"
	"github.com/tahfiz/listening/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
