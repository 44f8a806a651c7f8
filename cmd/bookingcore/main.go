package main

import (
	"log"

	"github.com/mariia-hub/bookingcore/internal/app"
	"github.com/mariia-hub/bookingcore/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
