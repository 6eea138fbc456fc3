package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/interviewd/internal/api"
	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/internal/questions"
	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/internal/skills"
	"github.com/nikmy/interviewd/internal/users"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	db, err := repo.NewClient(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init mongo client"))
	}

	directory := users.NewClient(cfg.UserDirectory, log)
	bank := questions.New(db.UserQuestions(), log)
	engine := interviews.New(cfg.Interviews, db.Interviews(), directory, bank, log)
	taxonomy := skills.New(db.Skills(), log)

	server := api.NewServer(cfg.API, log, engine, bank, taxonomy)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		err := errors.Join(
			server.Shutdown(context.Background()),
			db.Close(context.Background()),
		)
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown"))
		}

		stopped <- struct{}{}
	})

	log.Infof("serving on %s", cfg.API.HTTP.Addr)
	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
