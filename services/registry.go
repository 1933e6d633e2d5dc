package services

import (
	"codenexus/config"
	"codenexus/engine"
)

// Progress is the global engine host, wired at boot
var Progress *ProgressService

// Platform is the global external judge client
var Platform *PlatformClient

// Init builds the global service instances from loaded configuration
func Init() {
	cfg := engine.Config{
		BlockXP:      config.AppConfig.BlockXP,
		DailyBonusXP: config.AppConfig.DailyBonusXP,
	}
	Progress = NewProgressService(NewGormProgressStore(), cfg)
	Platform = NewPlatformClient()
}
