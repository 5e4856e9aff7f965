// File: cmd/lf-server/main.go
// Project: OS Final Project
// Description: Leader-Follower server entry point
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

// Command lf-server runs the Leader-Follower flavor of the graph server:
// MST computation results are formatted and sent by whichever pool worker
// dequeues the job, under round-robin leader rotation.
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
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/lfpool"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/metrics"
	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/reactor"
)

func main() {
	cfg := config.DefaultLFConfig()

	addr := flag.String("addr", cfg.Addr, "TCP address to listen on")
	workers := flag.Int("workers", cfg.LFWorkers, "number of Leader-Follower pool workers")
	logLevel := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, ToStdout: true})
	log := logger.WithComponent("main")

	pool := lfpool.New(*workers)
	pool.Start()
	defer pool.Stop()

	r := reactor.NewLF(pool)

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
