package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DispatchStage string

const (
	StageResolve DispatchStage = "resolve"
	StageSend    DispatchStage = "send"
)

// DispatchResult is the outcome of one reminder. Err is nil on success;
// Stage tells which step failed.
type DispatchResult struct {
	TenantID string
	MemberID string
	Stage    DispatchStage
	Err      error
}

type dispatcher struct {
	chat     contract.ChatClient
	log      *zap.Logger
	timeout  time.Duration
	limit    int
	reminder func(memberID string) string
}

func newDispatcher(chat contract.ChatClient, reminder func(memberID string) string, timeout time.Duration, limit int, log *zap.Logger) *dispatcher {
	return &dispatcher{
		chat:     chat,
		log:      log,
		timeout:  timeout,
		limit:    limit,
		reminder: reminder,
	}
}

// Dispatch sends one reminder per member. Members are handled independently:
// a failure is recorded in that member's result and logged, nothing is retried.
func (d *dispatcher) Dispatch(ctx context.Context, tenantID string, memberIDs []string) []DispatchResult {
	results := make([]DispatchResult, len(memberIDs))

	g := new(errgroup.Group)
	g.SetLimit(d.limit)
	for i, memberID := range memberIDs {
		g.Go(func() error {
			results[i] = d.notify(ctx, tenantID, memberID)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Err == nil {
			continue
		}
		msg := "failed to send reminder"
		if r.Stage == StageResolve {
			msg = "failed to resolve member"
		}
		d.log.Warn(msg,
			zap.String("tenant_id", r.TenantID),
			zap.String("member_id", r.MemberID),
			zap.Error(r.Err),
		)
	}

	return results
}

func (d *dispatcher) notify(ctx context.Context, tenantID, memberID string) (result DispatchResult) {
	result = DispatchResult{TenantID: tenantID, MemberID: memberID, Stage: StageResolve}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	channelID, err := d.chat.ResolveDirect(ctx, memberID)
	if err != nil {
		result.Err = err
		return result
	}

	result.Stage = StageSend
	if err := d.chat.SendText(ctx, channelID, d.reminder(memberID)); err != nil {
		result.Err = err
		return result
	}

	return result
}
