package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Trigger is a recurring instant: hour and minute in UTC on the given ISO weekdays.
type Trigger struct {
	Name   string
	Hour   int
	Minute int
	Days   []int
}

// Job is run on every firing of its trigger. It receives no payload and
// must read whatever state it needs at fire time.
type Job func(ctx context.Context) error

// JobID is the handle returned by Register.
type JobID int

var (
	MorningCheckin = Trigger{
		Name:   "morning-checkin",
		Hour:   domain.MorningCheckinHour,
		Minute: 0,
		Days:   domain.Workdays,
	}
	AfternoonCheckin = Trigger{
		Name:   "afternoon-checkin",
		Hour:   domain.AfternoonCheckinHour,
		Minute: 0,
		Days:   domain.Workdays,
	}
	DailySummary = Trigger{
		Name:   "daily-summary",
		Hour:   domain.SummaryHour,
		Minute: domain.SummaryMinute,
		Days:   domain.Workdays,
	}
)

type scheduledJob struct {
	id      JobID
	trigger Trigger
	job     Job
}

type firing struct {
	at   time.Time
	jobs []scheduledJob
}

type scheduler struct {
	log      *zap.Logger
	locker   contract.Locker
	lockTTL  time.Duration
	now      func() time.Time
	mu       sync.Mutex
	jobs     []scheduledJob
	nextID   JobID
	lastFire time.Time

	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
	wg            sync.WaitGroup
}

func newScheduler(locker contract.Locker, lockTTL time.Duration, log *zap.Logger) *scheduler {
	return &scheduler{
		log:           log,
		locker:        locker,
		lockTTL:       lockTTL,
		now:           time.Now,
		configChanged: make(chan struct{}, 1),
	}
}

// Register adds a job to run on every occurrence of trigger.
func (s *scheduler) Register(trigger Trigger, job Job) (JobID, error) {
	if err := validateTrigger(trigger); err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.jobs = append(s.jobs, scheduledJob{id: id, trigger: trigger, job: job})
	s.mu.Unlock()

	s.log.Info("job registered",
		zap.String("trigger", trigger.Name),
		zap.String("at", fmt.Sprintf("%02d:%02d UTC", trigger.Hour, trigger.Minute)),
		zap.Ints("days", trigger.Days),
	)

	s.notifyChange()
	return id, nil
}

func (s *scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.log.Info("scheduler starting")

	stop := s.stopChan
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.mainLoop(ctx, stop)
	}()
}

// Stop ends the main loop and waits for in-flight firings. A stopped
// scheduler can be started again.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.log.Info("scheduler stopping")
	s.wg.Wait()
}

func (s *scheduler) notifyChange() {
	select {
	case s.configChanged <- struct{}{}:
	default:
	}
}

func (s *scheduler) mainLoop(ctx context.Context, stop <-chan struct{}) {
	for {
		next := s.findNextFiring(s.now().UTC())

		if len(next.jobs) == 0 {
			s.log.Info("no jobs registered, waiting")
			select {
			case <-s.configChanged:
				continue
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}

		s.log.Info("next firing scheduled",
			zap.Time("at", next.at),
			zap.Int("jobs", len(next.jobs)),
		)

		timer := time.NewTimer(next.at.Sub(s.now()))

		select {
		case <-timer.C:
			s.fire(ctx, next)

		case <-s.configChanged:
			timer.Stop()
			continue

		case <-stop:
			timer.Stop()
			return

		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// findNextFiring returns the earliest instant strictly after now (and after
// the last firing) together with every job due at that instant.
func (s *scheduler) findNextFiring(now time.Time) firing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastFire.After(now) {
		now = s.lastFire
	}

	type jobNext struct {
		job      scheduledJob
		nextTime time.Time
	}

	var allNext []jobNext
	for _, j := range s.jobs {
		nextTime := calculateNext(j.trigger, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, jobNext{job: j, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return firing{}
	}

	sort.SliceStable(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	result := firing{at: allNext[0].nextTime}
	for _, jn := range allNext {
		if !jn.nextTime.Equal(result.at) {
			break
		}
		result.jobs = append(result.jobs, jn.job)
	}

	return result
}

// fire starts every due job in its own goroutine. A failing or panicking
// job never affects the others nor its own future firings.
func (s *scheduler) fire(ctx context.Context, f firing) {
	s.mu.Lock()
	s.lastFire = f.at
	s.mu.Unlock()

	for _, j := range f.jobs {
		s.wg.Add(1)
		go func(j scheduledJob) {
			defer s.wg.Done()
			s.runJob(ctx, j, f.at)
		}(j)
	}
}

func (s *scheduler) runJob(ctx context.Context, j scheduledJob, at time.Time) {
	log := s.log.With(
		zap.String("trigger", j.trigger.Name),
		zap.String("run_id", uuid.NewString()),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("scheduled job panicked", zap.Any("panic", r))
		}
	}()

	key := fmt.Sprintf("standup:fire:%s:%d", j.trigger.Name, at.Unix())
	acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		log.Warn("failed to acquire firing lock, running anyway", zap.Error(err))
		acquired = true
	}
	if !acquired {
		log.Info("firing already handled by another instance")
		return
	}

	log.Info("cron job start", zap.Time("scheduled_at", at))
	start := s.now()

	if err := j.job(ctx); err != nil {
		log.Error("scheduled job failed", zap.Error(err))
		return
	}

	log.Info("cron job done", zap.Duration("took", s.now().Sub(start)))
}

func calculateNext(trigger Trigger, now time.Time) time.Time {
	if len(trigger.Days) == 0 {
		return time.Time{}
	}

	activeDays := make(map[int]bool)
	for _, day := range trigger.Days {
		activeDays[day] = true
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), trigger.Hour, trigger.Minute, 0, 0, time.UTC)

	if activeDays[isoWeekday(today)] && today.After(now) {
		return today
	}

	for i := 1; i <= 7; i++ {
		nextDay := today.AddDate(0, 0, i)
		if activeDays[isoWeekday(nextDay)] {
			return nextDay
		}
	}

	return time.Time{}
}

// isoWeekday maps Go's Sunday=0 to ISO 8601 Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return domain.Sunday
	}
	return wd
}

func validateTrigger(t Trigger) error {
	if t.Name == "" {
		return fmt.Errorf("trigger name is required")
	}
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("trigger %s: invalid hour %d", t.Name, t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("trigger %s: invalid minute %d", t.Name, t.Minute)
	}
	if len(t.Days) == 0 {
		return fmt.Errorf("trigger %s: no active days", t.Name)
	}
	for _, d := range t.Days {
		if !domain.ValidWeekday(d) {
			return fmt.Errorf("trigger %s: invalid weekday %d", t.Name, d)
		}
	}
	return nil
}
