package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/iota-uz/pharma-admin/modules"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/configuration"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	srv := mockapi.New(mockapi.Options{
		Origins:         conf.MockAPI.Origins,
		MetricsPath:     conf.MockAPI.MetricsPath,
		RequestIDHeader: conf.RequestIDHeader,
		MaxUploadSize:   conf.MaxUploadSize,
		Logger:          logger,
	})

	app := application.New(&application.ApplicationOptions{
		Config: conf,
		Client: restclient.New(restclient.Options{BaseURL: conf.API.BaseURL, Logger: logger}),
		Logger: logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	for _, mock := range app.Mocks() {
		mock(srv.Backend, true)
	}
	logger.WithField("collections", srv.Backend.Names()).Info("mock api seeded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	addr := fmt.Sprintf(":%d", conf.MockAPI.Port)
	log.Printf("Listening on: http://localhost%s\n", addr)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Printf("mock api stopped: %v", err)
	}
}
