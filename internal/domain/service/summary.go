package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// summaryService posts the end-of-day report and resets the reported
// responses. It is only scheduled when explicitly enabled.
type summaryService struct {
	dm        contract.DataManager
	chat      contract.ChatClient
	templates message.Templates
	log       *zap.Logger
	now       func() time.Time
}

func newSummary(dm contract.DataManager, chat contract.ChatClient, templates message.Templates, log *zap.Logger) *summaryService {
	return &summaryService{
		dm:        dm,
		chat:      chat,
		templates: templates,
		log:       log,
		now:       time.Now,
	}
}

func (s *summaryService) Run(ctx context.Context) error {
	ids, err := s.dm.Standup().ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list standups: %w", err)
	}

	var errs error
	for _, id := range ids {
		standup, err := s.dm.Standup().GetByID(ctx, id)
		if err != nil {
			s.log.Error("failed to load standup", zap.String("tenant_id", id), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		if standup == nil {
			continue
		}

		if err := s.summarize(ctx, standup); err != nil {
			s.log.Error("failed to summarize standup", zap.String("tenant_id", id), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}

	if errs != nil {
		s.log.Warn("daily summary finished with errors", zap.Error(errs))
	}
	return nil
}

func (s *summaryService) summarize(ctx context.Context, standup *entity.Standup) error {
	var responded []string
	for _, id := range standup.Members {
		if standup.HasResponded(id) {
			responded = append(responded, id)
		}
	}
	missing := Missing(standup.Members, standup.Responses)

	card := s.templates.SummaryCard(standup, responded, missing, s.now())
	if err := s.chat.SendCard(ctx, standup.ChannelID, card); err != nil {
		return fmt.Errorf("failed to post summary: %w", err)
	}

	// only the reported keys are removed; a reply that lands after the
	// snapshot survives until the next summary
	for _, id := range responded {
		if err := s.dm.Standup().DeleteResponse(ctx, standup.ID, id); err != nil {
			return fmt.Errorf("failed to clear response of %s: %w", id, err)
		}
	}

	s.log.Info("responses cleared", zap.String("tenant_id", standup.ID), zap.Int("reported", len(responded)))
	return nil
}
