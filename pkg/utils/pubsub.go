package utils

import (
	"github.com/sasha-s/go-deadlock"
)

const subscriberBuffer = 16

// Topic fans values out to every current subscriber. Publishing never
// blocks: a subscriber whose buffer is full misses the value.
type Topic[T any] struct {
	subscribers map[chan T]struct{}
	mutex       deadlock.Mutex
}

func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{
		subscribers: make(map[chan T]struct{}),
	}
}

// Publish returns the number of subscribers that received value.
func (t *Topic[T]) Publish(value T) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delivered := 0
	for subscriber := range t.subscribers {
		select {
		case subscriber <- value:
			delivered++
		default:
		}
	}
	return delivered
}

type Subscriber[T any] struct {
	channel chan T
	topic   *Topic[T]
}

func (t *Topic[T]) Subscribe() *Subscriber[T] {
	channel := make(chan T, subscriberBuffer)
	t.mutex.Lock()
	t.subscribers[channel] = struct{}{}
	t.mutex.Unlock()

	return &Subscriber[T]{channel, t}
}

func (t *Subscriber[T]) Recv() <-chan T {
	return t.channel
}

func (t *Subscriber[T]) Done() {
	topic := t.topic
	topic.mutex.Lock()
	delete(topic.subscribers, t.channel)
	topic.mutex.Unlock()
}
