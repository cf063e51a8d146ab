package main

import (
	"context"
	"log"

	"github.com/endayshebocah/tckokuo/config"
	"github.com/endayshebocah/tckokuo/db"
	"github.com/endayshebocah/tckokuo/route"
	"github.com/endayshebocah/tckokuo/stream"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()
	defer db.Disconnect()
	db.Migrate()

	app := config.NewApp()

	hub := stream.NewHub()
	watcher := stream.NewWatcher(db.GetMongo(), hub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	route.SetupRoutes(app, db.GetDB(), db.GetMongo(), hub)

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
