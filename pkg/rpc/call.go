package rpc

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"go.uber.org/zap"
)

var requestDurations = prometheus.NewSummaryVec(prometheus.SummaryOpts{
	Name:       "rpc_request_duration_us",
	Help:       "rpc request round trip in microseconds",
	Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
}, []string{"method"})

var errorCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "rpc_error_count",
	Help: "rpc failed requests by venue error",
}, []string{"method", "code"})

func init() {
	prometheus.MustRegister(requestDurations, errorCounters)
}

var nextRequestID uint64

// NextID returns a process wide unique request id.
func NextID() uint64 {
	return atomic.AddUint64(&nextRequestID, 1)
}

// Call sends req over t and decodes the result into the response type bound to req.
// A malformed result is reported as *models.DecodeError, a venue error reply as *Error.
func Call[R any](ctx context.Context, logger *zap.Logger, t Transport, req models.Request[R]) (*R, error) {
	method := req.Method()
	params, err := models.EncodeParams(req)
	if err != nil {
		return nil, errors.WithMessage(err, "fail encode params of "+method)
	}

	start := time.Now()
	result, err := t.Call(ctx, method, params)
	requestDurations.WithLabelValues(method).Observe(float64(time.Since(start) / time.Microsecond))
	if err != nil {
		code := "transport"
		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			code = rpcErr.Code.String()
		}
		errorCounters.WithLabelValues(method, code).Inc()
		logger.Warn("rpc: call fail", zap.String("method", method), zap.Error(err))
		return nil, err
	}

	resp, err := models.DecodeResponse(req, result)
	if err != nil {
		errorCounters.WithLabelValues(method, "decode").Inc()
		logger.Error("rpc: fail decode result", zap.String("method", method), zap.ByteString("result", result), zap.Error(err))
		return nil, err
	}
	logger.Debug("rpc: call done", zap.String("method", method), zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}
