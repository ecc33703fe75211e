package service

import (
	"context"
	"log"
	"time"
)

// scheduler periodically re-derives the leaderboards and master log from the
// report log. The derived views are safely regenerable at any time, so the
// rebuild is the same code path the slash commands use and a failed run just
// waits for the next tick.
type scheduler struct {
	medic    *medicService
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func newScheduler(medic *medicService, interval time.Duration) *scheduler {
	return &scheduler{
		medic:    medic,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	if s.interval <= 0 {
		log.Println("Scheduled rebuilds disabled")
		return
	}

	s.running = true
	log.Printf("Scheduler starting, rebuilding every %s", s.interval)
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Println("Scheduled rebuild starting...")
			if err := s.medic.RebuildAll(context.Background()); err != nil {
				log.Printf("Scheduled rebuild failed: %v", err)
				continue
			}
			log.Println("Scheduled rebuild completed")

		case <-s.stopChan:
			return
		}
	}
}
