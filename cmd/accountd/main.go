package main

import (
	"context"
	"log"

	"github.com/mkarpovs/accountd/internal/app"
	"github.com/mkarpovs/accountd/internal/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(ctx)
}
