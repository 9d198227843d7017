package feed

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gitlab.heather.loc/helios/deribit/pkg/models/subscription"
	"go.uber.org/zap"
)

var frameCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "feed_frame_count",
	Help: "feed decoded frames by family",
}, []string{"family"})

var decodeErrorCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "feed_decode_error_count",
	Help: "feed dropped frames by family",
}, []string{"family"})

func init() {
	prometheus.MustRegister(frameCounters, decodeErrorCounters)
}

const unknownFamily = "unknown"

// Notification is a decoded frame.
type Notification struct {
	Channel string
	Payload subscription.Payload
}

// Dispatcher decodes frames of a Source into notifications. A frame that fails to decode is
// logged and dropped; the following frames are still delivered.
type Dispatcher struct {
	logger        *zap.Logger
	source        Source
	notifications chan Notification
}

func NewDispatcher(logger *zap.Logger, source Source) *Dispatcher {
	return &Dispatcher{
		logger:        logger,
		source:        source,
		notifications: make(chan Notification, 1000),
	}
}

// Notifications is closed when Run returns.
func (d *Dispatcher) Notifications() <-chan Notification {
	return d.notifications
}

// Run pumps frames until the source is drained or ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.notifications)

	frames := d.source.Frames()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-frames:
			if !ok {
				d.logger.Info("feed: source drained")
				return nil
			}
			n, ok := d.decode(frame)
			if !ok {
				continue
			}
			select {
			case d.notifications <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (d *Dispatcher) decode(frame Frame) (Notification, bool) {
	family, err := FamilyOf(frame.Channel)
	if err != nil {
		decodeErrorCounters.WithLabelValues(unknownFamily).Inc()
		d.logger.Warn("feed: drop frame", zap.String("channel", frame.Channel), zap.Error(err))
		return Notification{}, false
	}

	payload, err := subscription.Decode(family, frame.Data)
	if err != nil {
		decodeErrorCounters.WithLabelValues(family.String()).Inc()
		d.logger.Error("feed: fail decode frame", zap.String("channel", frame.Channel),
			zap.ByteString("data", frame.Data), zap.Error(err))
		return Notification{}, false
	}

	frameCounters.WithLabelValues(family.String()).Inc()
	return Notification{Channel: frame.Channel, Payload: payload}, true
}
