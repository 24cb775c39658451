package main

import (
	"fmt"
	"log"

	"github.com/numanharith/propertyhub-frontend/internal"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("propertyhub-web: %v", err)
	}
}

func run() error {
	application, err := internal.NewApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}
