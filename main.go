package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/api/handlers"
	"github.com/bearcourt/bear-court-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer a.Scheduler.Stop()

	zap.S().Infow("bear-court-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(":"+a.Config.Port, a.Router))
}
