// Command deribit-tail prints typed channel notifications from a feed source.
//
//	deribit-tail -source 'wss://test.deribit.com/ws/api/v2?channels=book.BTC-PERPETUAL.100ms&heartbeat=30'
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.heather.loc/helios/deribit/pkg/feed"
	"go.uber.org/zap"
)

func main() {
	dsn := flag.String("source", "mock://?fixtures=true", "feed source dsn")
	metricsAddr := flag.String("metrics", "", "listen address for /metrics, disabled when empty")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		go serveMetrics(logger, *metricsAddr)
	}

	source, err := feed.NewSource(ctx, logger, *dsn)
	if err != nil {
		logger.Fatal("fail open source", zap.String("dsn", *dsn), zap.Error(err))
	}
	// the mock source has nothing after its fixtures
	if mock, ok := source.(*feed.MockSource); ok {
		_ = mock.Close()
	} else {
		defer func() {
			if err := source.Close(); err != nil {
				logger.Warn("fail close source", zap.Error(err))
			}
		}()
	}

	dispatcher := feed.NewDispatcher(logger, source)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for n := range dispatcher.Notifications() {
			logger.Info("notification", zap.String("channel", n.Channel),
				zap.Stringer("family", n.Payload.Family()), zap.Any("payload", n.Payload))
		}
	}()

	if err = dispatcher.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("dispatcher stopped", zap.Error(err))
	}
	<-printed
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func serveMetrics(logger *zap.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listen", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
