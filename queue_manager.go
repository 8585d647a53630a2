package tgmux

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// queueManager hands out one chatQueue per chat. Entries expire a little after
// their queue goes idle and are removed by the cache janitor.
type queueManager struct {
	cache       *cache.Cache
	processFunc func(Update)
	idle        time.Duration
	ctx         context.Context
	mu          sync.Mutex
}

func newQueueManager(ctx context.Context, processFunc func(Update), idle time.Duration) *queueManager {
	return &queueManager{
		cache:       cache.New(2*idle, 10*idle),
		processFunc: processFunc,
		idle:        idle,
		ctx:         ctx,
	}
}

// Enqueue adds update to its chat's queue, replacing the queue if it stopped.
func (m *queueManager) Enqueue(update Update) {
	for {
		if m.GetOrCreateQueue(update.ChatID).Add(update) {
			return
		}
	}
}

func (m *queueManager) GetOrCreateQueue(chatID int64) *chatQueue {
	key := strconv.FormatInt(chatID, 10)

	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.cache.Get(key)
	if ok {
		msgQueue := queue.(*chatQueue)
		if !msgQueue.Stopped() {
			m.cache.SetDefault(key, msgQueue)
			return msgQueue
		}
	}

	messageQueue := newChatQueue(m.ctx, m.processFunc, m.idle)
	messageQueue.Start()

	m.cache.SetDefault(key, messageQueue)

	return messageQueue
}

func (m *queueManager) Len() int {
	return m.cache.ItemCount()
}
