package tgmux

import (
	"context"
	"sync"
	"time"
)

const queueBufferSize = 5

// chatQueue processes one chat's updates in arrival order and stops itself
// after sitting idle.
type chatQueue struct {
	updateChan    chan Update
	processUpdate func(Update)
	idle          time.Duration
	ctx           context.Context

	mu      sync.Mutex
	pending int
	stopped bool
}

func newChatQueue(ctx context.Context, processFunc func(Update), idle time.Duration) *chatQueue {
	return &chatQueue{
		updateChan:    make(chan Update, queueBufferSize),
		processUpdate: processFunc,
		idle:          idle,
		ctx:           ctx,
	}
}

func (q *chatQueue) Start() {
	go func() {
		timer := time.NewTimer(q.idle)
		defer timer.Stop()

		for {
			select {
			case update := <-q.updateChan:
				q.processUpdate(update)

				q.mu.Lock()
				q.pending--
				q.mu.Unlock()

				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(q.idle)
			case <-q.ctx.Done():
				q.stop()
				return
			case <-timer.C:
				q.mu.Lock()
				if q.pending > 0 {
					q.mu.Unlock()
					timer.Reset(q.idle)
					continue
				}
				q.stopped = true
				q.mu.Unlock()
				return
			}
		}
	}()
}

// Add enqueues update. It returns false if the queue has already stopped,
// in which case the caller needs a fresh queue.
func (q *chatQueue) Add(update Update) bool {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return false
	}
	q.pending++
	q.mu.Unlock()

	select {
	case q.updateChan <- update:
		return true
	case <-q.ctx.Done():
		return true
	}
}

func (q *chatQueue) Stopped() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.stopped
}

func (q *chatQueue) stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
}
