package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// TenantJoined provisions the standup channel and an empty record, then
// posts the intro card. Nothing is rolled back on failure. A tenant that
// already has a record is left untouched, so repeated join events are safe.
func (s *standupService) TenantJoined(ctx context.Context, tenantID string) error {
	log := s.log.With(zap.String("tenant_id", tenantID))

	existing, err := s.dm.Standup().GetByID(ctx, tenantID)
	if err != nil {
		log.Error("failed to check standup", zap.Error(err))
		return fmt.Errorf("failed to check standup: %w", err)
	}
	if existing != nil {
		log.Debug("standup already exists")
		return nil
	}

	channelID, err := s.chat.CreateTextChannel(ctx, tenantID, domain.StandupChannelName, domain.StandupChannelTopic)
	if err != nil {
		log.Error("failed to create standup channel", zap.Error(err))
		return fmt.Errorf("failed to create standup channel: %w", err)
	}

	standup := entity.NewStandup(tenantID, channelID)
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.Standup().Create(ctx, standup)
	})
	if err != nil {
		log.Error("failed to save standup", zap.String("channel_id", channelID), zap.Error(err))
		return fmt.Errorf("failed to save standup: %w", err)
	}
	log.Info("standup created", zap.String("channel_id", channelID))

	if err := s.chat.SendCard(ctx, channelID, s.templates.IntroCard(s.prefix, s.now())); err != nil {
		log.Error("failed to send intro message", zap.Error(err))
		return fmt.Errorf("failed to send intro message: %w", err)
	}

	return nil
}

// TenantLeft deletes the tenant's record. Unknown tenants are not an error.
func (s *standupService) TenantLeft(ctx context.Context, tenantID string) error {
	if err := s.dm.Standup().Delete(ctx, tenantID); err != nil {
		s.log.Error("failed to delete standup", zap.String("tenant_id", tenantID), zap.Error(err))
		return fmt.Errorf("failed to delete standup: %w", err)
	}

	s.log.Info("standup deleted", zap.String("tenant_id", tenantID))
	return nil
}
