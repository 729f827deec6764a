package main

import (
	"bytes"
	"net/http"
	"os"
	osSignal "os/signal"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func sendSIGTERMOnNotify(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		signalNotify = osSignal.Notify
	})
	signalNotify = func(ch chan<- os.Signal, sig ...os.Signal) {
		go func() {
			ch <- syscall.SIGTERM
		}()
	}
}

func TestShutdownSignals(t *testing.T) {
	sendSIGTERMOnNotify(t)

	server := &http.Server{}
	called := make(chan struct{}, 1)
	server.RegisterOnShutdown(func() {
		called <- struct{}{}
	})

	shutdown(server, time.Millisecond, zaptest.NewLogger(t))

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatalf("expected server shutdown callback to execute")
	}
}

func TestRunServeStopsOnSignal(t *testing.T) {
	// The server goroutine may log after the test returns, so zaptest cannot be used here.
	original := newLogger
	newLogger = func(string) (*zap.Logger, error) {
		return zap.NewNop(), nil
	}
	t.Cleanup(func() {
		newLogger = original
	})
	sendSIGTERMOnNotify(t)

	args := append(baseArgs(t), "serve", "--port", "127.0.0.1:0", "--shutdown-grace", "100ms", "--no-request-logging")

	done := make(chan error, 1)
	go func() {
		done <- run(args, &bytes.Buffer{})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after signal")
	}
}
