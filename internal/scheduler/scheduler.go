package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/i474232898/weather-intent-service/internal/weather"
)

// Scheduler periodically probes the weather provider with a fixed location so
// upstream availability shows up in the logs before user traffic hits it.
// The probe is pure observability and never feeds request handling.
type Scheduler struct {
	scheduler *gocron.Scheduler
	gateway   weather.Gateway
	location  string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(gateway weather.Gateway, location string, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		gateway:   gateway,
		location:  location,
		interval:  interval,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.location == "" {
		log.Println("scheduler: no probe location configured; provider probe disabled")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.gateway.Current(ctx, s.location); err != nil {
			log.Printf("scheduler: provider probe failed for %s: %v", s.location, err)
			return
		}
		log.Printf("scheduler: provider probe ok for %s", s.location)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
