package config

import (
	"cura-booking-service/internal/pkg/constvars"
	"log"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown() error {
	// stdout and stderr cannot always be synced, only file output is checked.
	err := b.Logger.Sync()
	if err != nil && b.InternalConfig.App.Env == constvars.AppEnvProduction {
		return err
	}
	log.Println("Successfully closing Logger")
	return nil
}
