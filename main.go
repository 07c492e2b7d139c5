package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vianuedu/backend/api"
	"github.com/vianuedu/backend/core"
	"github.com/vianuedu/backend/core/student"
	"github.com/vianuedu/backend/core/testlib"
	"github.com/vianuedu/backend/services/logger"
	"github.com/vianuedu/backend/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, core.Conf.GetString("appName")+" : ", log.LstdFlags|log.Lshortfile)

	// set up logger
	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up DB
	db, err := inmem.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}

	// set up services
	stdSvc := student.NewService(inmem.NewStudentRepository(db))
	testSvc := testlib.NewService(inmem.NewTestRepository(db))

	// start API server
	app := api.NewServer(
		&api.Options{
			Address:        core.Conf.GetString("serverAddress"),
			DisableReqLogs: core.Conf.GetBool("disableRequestLogs"),
			Logger:         logger,
			StudentSvc:     stdSvc,
			TestSvc:        testSvc,
		},
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.GetDuration("shutdownTimeout"))
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			logger.Error("stopping server", err)
		}
	}()

	app.Start()
}
