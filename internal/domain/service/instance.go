package service

import (
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"go.uber.org/zap"
)

const (
	defaultDispatchTimeout     = 10 * time.Second
	defaultDispatchConcurrency = 8
	defaultLockTTL             = 10 * time.Minute
)

// Options tunes the services. Zero values fall back to the defaults above.
type Options struct {
	// Prefix is how commands are typed on the platform, used in help texts.
	Prefix              string
	DispatchTimeout     time.Duration
	DispatchConcurrency int
	SummaryEnabled      bool
	LockTTL             time.Duration
}

type Instance struct {
	Standup   *standupService
	Checkin   *checkinService
	Summary   *summaryService
	Scheduler *scheduler
}

// NewInstance wires the services and registers the scheduled jobs. The
// scheduler is returned stopped.
func NewInstance(dm contract.DataManager, chat contract.ChatClient, locker contract.Locker,
	templates message.Templates, opts Options, log *zap.Logger) (*Instance, error) {

	if opts.DispatchTimeout <= 0 {
		opts.DispatchTimeout = defaultDispatchTimeout
	}
	if opts.DispatchConcurrency < 1 {
		opts.DispatchConcurrency = defaultDispatchConcurrency
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}

	reminder := func(memberID string) string {
		return templates.ReminderFor(memberID, opts.Prefix)
	}
	dispatcher := newDispatcher(chat, reminder, opts.DispatchTimeout, opts.DispatchConcurrency, log.Named("dispatcher"))

	i := &Instance{
		Standup:   newStandup(dm, chat, templates, opts.Prefix, log.Named("standup")),
		Checkin:   newCheckin(dm, dispatcher, opts.DispatchConcurrency, log.Named("checkin")),
		Summary:   newSummary(dm, chat, templates, log.Named("summary")),
		Scheduler: newScheduler(locker, opts.LockTTL, log.Named("scheduler")),
	}

	for _, trigger := range []Trigger{MorningCheckin, AfternoonCheckin} {
		if _, err := i.Scheduler.Register(trigger, i.Checkin.Run); err != nil {
			return nil, err
		}
	}

	if opts.SummaryEnabled {
		if _, err := i.Scheduler.Register(DailySummary, i.Summary.Run); err != nil {
			return nil, err
		}
	}

	return i, nil
}
