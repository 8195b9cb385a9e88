package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives notifications for the topics it is registered on.
// Send must not block; a subscriber that cannot keep up drops messages.
type Subscriber interface {
	Send(n Notification) bool
}

// Registry is an explicit subscription table keyed by topic. Entries are
// added when a client connects and pruned when it disconnects; there is no
// ambient global state.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]map[Subscriber]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		topics: make(map[string]map[Subscriber]struct{}),
	}
}

func (r *Registry) Subscribe(topic string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topics[topic]
	if !ok {
		subs = make(map[Subscriber]struct{})
		r.topics[topic] = subs
	}
	subs[sub] = struct{}{}
}

func (r *Registry) Unsubscribe(topic string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topics[topic]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.topics, topic)
	}
}

// UnsubscribeAll removes the subscriber from every topic it is on.
func (r *Registry) UnsubscribeAll(sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for topic, subs := range r.topics {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(r.topics, topic)
		}
	}
}

// Publish delivers the notification to every current subscriber of the
// topic. Fire-and-forget: dropped deliveries are logged, never returned.
func (r *Registry) Publish(topic string, n Notification) {
	r.mu.RLock()
	subs := make([]Subscriber, 0, len(r.topics[topic]))
	for sub := range r.topics[topic] {
		subs = append(subs, sub)
	}
	r.mu.RUnlock()

	for _, sub := range subs {
		if !sub.Send(n) {
			zap.L().Warn("notification dropped, slow subscriber", zap.String("topic", topic))
		}
	}
}

// Subscribers reports how many subscribers a topic currently has.
func (r *Registry) Subscribers(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}
