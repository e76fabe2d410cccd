package queue

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/ports"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes admin access records to a fixed set of workers sharded by
// caller id, so each admin's records are written in the order they happened.
type Dispatcher struct {
	workers []chan ports.AdminAccess
	sink    ports.AccessLog
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.AccessLog, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AdminAccess, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AdminAccess, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands rec to the worker responsible for its caller. A full worker
// channel drops the record rather than stalling the request.
func (d *Dispatcher) Enqueue(rec ports.AdminAccess) {
	idx := d.shardIndex(rec.UserID)
	depth := metrics.AccessQueueDepth.WithLabelValues(strconv.Itoa(idx))

	// Counted before the send so the worker's Dec never runs first.
	depth.Inc()
	select {
	case d.workers[idx] <- rec:
	default:
		depth.Dec()
		d.log.Warn().
			Int64("user_id", rec.UserID).
			Str("request_id", rec.RequestID).
			Int("worker_id", idx).
			Msg("access log queue full, record dropped")
	}
}

// shardIndex maps a caller id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID int64) int {
	if userID < 0 {
		userID = -userID
	}
	return int(userID % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AdminAccess) {
	depth := metrics.AccessQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			if err := d.sink.Append(ctx, rec); err != nil {
				d.log.Error().Err(err).
					Int64("user_id", rec.UserID).
					Str("request_id", rec.RequestID).
					Int("worker_id", id).
					Msg("access log write failed")
			}
		}
	}
}
