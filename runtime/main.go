package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/periscope-tudelft/periscope_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(
		&services.SqlService{},
		&services.JWTService{},
		&services.RedisService{},
		&services.MonitoringService{},

		&services.AuthService{},
		&services.GameService{},
		&services.PhotoService{},
		&services.MediaService{},

		&services.HttpService{},
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to build service context")
		return
	}

	if err := ctx.Run(); err != nil {
		log.WithError(err).Fatal("Service context stopped")
	}
}
