package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fitbuddy/internal/buildinfo"
	"github.com/dmitrijs2005/fitbuddy/internal/client/cli"
	"github.com/dmitrijs2005/fitbuddy/internal/client/config"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// pick up FITNESS_API_KEY etc.; a missing .env is fine
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
