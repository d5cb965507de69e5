package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/taingy-srun/portfolio/internal/application/service"
)

type TopicCount struct {
	Topic string
	Count int
}

// TopicStats tallies how often each chat topic is answered.
type TopicStats struct {
	mu       sync.Mutex
	counts   map[string]int
	sessions map[string]struct{}
	total    int
	lastSeen time.Time
}

func NewTopicStats() *TopicStats {
	return &TopicStats{
		counts:   make(map[string]int),
		sessions: make(map[string]struct{}),
	}
}

func (s *TopicStats) Record(evt service.QueryAnswered) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[evt.Topic]++
	s.sessions[evt.SessionID] = struct{}{}
	s.total++
	if evt.AnsweredAt.After(s.lastSeen) {
		s.lastSeen = evt.AnsweredAt
	}
}

// Snapshot returns counts ordered by count desc, then topic name.
func (s *TopicStats) Snapshot() []TopicCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TopicCount, 0, len(s.counts))
	for topic, n := range s.counts {
		out = append(out, TopicCount{Topic: topic, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

func (s *TopicStats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *TopicStats) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *TopicStats) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
