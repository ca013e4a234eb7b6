package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Missing returns the members without a response, in roster order.
// A member listed twice is reported once.
func Missing(members []string, responses map[string]string) []string {
	missing := make([]string, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, id := range members {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := responses[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// SweepReport summarizes one check-in sweep.
type SweepReport struct {
	RunID   string
	Tenants int
	Skipped int
	Sent    int
	Failed  int
	Err     error
}

type checkinService struct {
	dm          contract.DataManager
	dispatcher  *dispatcher
	log         *zap.Logger
	concurrency int
}

func newCheckin(dm contract.DataManager, dispatcher *dispatcher, concurrency int, log *zap.Logger) *checkinService {
	return &checkinService{
		dm:          dm,
		dispatcher:  dispatcher,
		log:         log,
		concurrency: concurrency,
	}
}

// Run is the scheduled job: it sweeps and logs the report. Failures are
// already isolated per tenant and member, so it never returns an error
// for them.
func (s *checkinService) Run(ctx context.Context) error {
	report := s.Sweep(ctx)

	fields := []zap.Field{
		zap.String("run_id", report.RunID),
		zap.Int("tenants", report.Tenants),
		zap.Int("skipped", report.Skipped),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
	}
	if report.Err != nil {
		s.log.Warn("check-in sweep finished with errors", append(fields, zap.Error(report.Err))...)
		return nil
	}
	s.log.Info("check-in sweep finished", fields...)
	return nil
}

// Sweep reminds every member who has not responded yet, across all tenants.
// Records are read fresh on every call and never modified.
func (s *checkinService) Sweep(ctx context.Context) SweepReport {
	report := SweepReport{RunID: uuid.NewString()}
	log := s.log.With(zap.String("run_id", report.RunID))

	ids, err := s.dm.Standup().ListIDs(ctx)
	if err != nil {
		log.Error("failed to list standups", zap.Error(err))
		report.Err = err
		return report
	}
	report.Tenants = len(ids)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			results, err := s.sweepTenant(ctx, log, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Skipped++
				report.Err = multierr.Append(report.Err, err)
				return nil
			}
			for _, r := range results {
				if r.Err != nil {
					report.Failed++
					report.Err = multierr.Append(report.Err,
						fmt.Errorf("%s %s/%s: %w", r.Stage, r.TenantID, r.MemberID, r.Err))
					continue
				}
				report.Sent++
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}

func (s *checkinService) sweepTenant(ctx context.Context, log *zap.Logger, tenantID string) ([]DispatchResult, error) {
	log = log.With(zap.String("tenant_id", tenantID))

	standup, err := s.dm.Standup().GetByID(ctx, tenantID)
	if err != nil {
		log.Error("failed to load standup", zap.Error(err))
		return nil, fmt.Errorf("load %s: %w", tenantID, err)
	}
	if standup == nil {
		// left the tenant between listing and loading
		log.Debug("standup vanished during sweep")
		return nil, nil
	}

	missing := Missing(standup.Members, standup.Responses)
	if len(missing) == 0 {
		log.Debug("everyone checked in", zap.Int("members", len(standup.Members)))
		return nil, nil
	}

	log.Info("reminding missing members", zap.Strings("missing", missing))
	return s.dispatcher.Dispatch(ctx, tenantID, missing), nil
}
