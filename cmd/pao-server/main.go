// File: cmd/pao-server/main.go
// Project: OS Final Project
// Description: Pipeline-of-Active-Objects server entry point
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Command pao-server runs the Pipeline-of-Active-Objects flavor of the
// graph server: MST computation results are assembled incrementally as a
// stage record flows through a fixed chain of stages, with the final stage
// sending the accumulated report.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/config"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/errkind"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/metrics"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/pao"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/reactor"
)

func main() {
	cfg := config.DefaultPAOConfig()

	addr := flag.String("addr", cfg.Addr, "TCP address to listen on")
	logLevel := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, ToStdout: true})
	log := logger.WithComponent("main")

	pipeline := pao.New(reactor.BuildPAOStages())
	pipeline.Start()
	defer pipeline.Stop()

	r := reactor.NewPAO(pipeline)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("signal received, shutting down: %+v", metrics.Global().Snapshot())
		r.Close()
		os.Exit(0)
	}()

	bind := func() error { return r.Listen(*addr) }
	isRetryable := func(err error) bool { return errors.Is(err, syscall.EADDRINUSE) }
	if err := errkind.Retry(context.Background(), bind, errkind.DefaultRetryConfig(), isRetryable); err != nil {
		log.Fatal("listen failed: %v", err)
	}

	if err := r.Serve(); err != nil {
		log.Fatal("serve failed: %v", err)
	}
}
