package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Defaults used when an interval is not positive.
const (
	DefaultTickInterval    = time.Minute
	DefaultWeatherInterval = 30 * time.Minute

	weatherTimeout = 30 * time.Second
)

// Runner is driven by the scheduler. *game.Game satisfies it.
type Runner interface {
	Tick()
	RefreshWeather(ctx context.Context) error
}

// Scheduler runs the decay tick and the weather refresh on fixed intervals.
type Scheduler struct {
	scheduler       *gocron.Scheduler
	runner          Runner
	tickInterval    time.Duration
	weatherInterval time.Duration
	onTick          func()
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithOnTick registers a callback run after every tick, e.g. to repaint a UI.
func WithOnTick(f func()) Option {
	return func(s *Scheduler) { s.onTick = f }
}

// New creates a new Scheduler.
func New(runner Runner, tickInterval, weatherInterval time.Duration, opts ...Option) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	if weatherInterval <= 0 {
		weatherInterval = DefaultWeatherInterval
	}
	s := &Scheduler{
		scheduler:       gocron.NewScheduler(time.UTC),
		runner:          runner,
		tickInterval:    tickInterval,
		weatherInterval: weatherInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start schedules both jobs and starts the underlying scheduler. Each job
// runs once immediately.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.tickInterval).Do(func() {
		s.runner.Tick()
		if s.onTick != nil {
			s.onTick()
		}
	})
	if err != nil {
		return err
	}

	// A slow fetch must not stack up behind the next one.
	_, err = s.scheduler.Every(s.weatherInterval).SingletonMode().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), weatherTimeout)
		defer cancel()

		if err := s.runner.RefreshWeather(ctx); err != nil {
			log.Printf("scheduler: weather refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("scheduler: tick every %s, weather every %s", s.tickInterval, s.weatherInterval)
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
