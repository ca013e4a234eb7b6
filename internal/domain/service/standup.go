package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"go.uber.org/zap"
)

type standupService struct {
	dm        contract.DataManager
	chat      contract.ChatClient
	templates message.Templates
	prefix    string
	log       *zap.Logger
	now       func() time.Time
}

func newStandup(dm contract.DataManager, chat contract.ChatClient, templates message.Templates, prefix string, log *zap.Logger) *standupService {
	return &standupService{
		dm:        dm,
		chat:      chat,
		templates: templates,
		prefix:    prefix,
		log:       log,
		now:       time.Now,
	}
}

func (s *standupService) GetStandup(ctx context.Context, tenantID string) (*entity.Standup, error) {
	standup, err := s.dm.Standup().GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return nil, domain.ErrStandupNotFound
	}
	return standup, nil
}

func (s *standupService) AddMember(ctx context.Context, tenantID, memberID string) error {
	if _, err := s.GetStandup(ctx, tenantID); err != nil {
		return err
	}

	if err := s.dm.Standup().AddMember(ctx, tenantID, memberID); err != nil {
		return err
	}

	s.log.Info("member added", zap.String("tenant_id", tenantID), zap.String("member_id", memberID))
	return nil
}

// RemoveMember drops the member from the roster together with their response.
func (s *standupService) RemoveMember(ctx context.Context, tenantID, memberID string) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		removed, err := tx.Standup().RemoveMember(ctx, tenantID, memberID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.ErrMemberNotFound
		}
		return tx.Standup().DeleteResponse(ctx, tenantID, memberID)
	})
	if err != nil {
		return err
	}

	s.log.Info("member removed", zap.String("tenant_id", tenantID), zap.String("member_id", memberID))
	return nil
}

func (s *standupService) SubmitResponse(ctx context.Context, memberID, tenantID, text string) (string, error) {
	target, err := s.replyTarget(ctx, memberID, tenantID)
	if err != nil {
		return "", err
	}

	if err := s.dm.Standup().SetResponse(ctx, target.ID, memberID, text); err != nil {
		return "", err
	}

	s.log.Info("response recorded", zap.String("tenant_id", target.ID), zap.String("member_id", memberID))
	return target.ID, nil
}

// replyTarget picks the standup a reply belongs to: the named tenant when
// given, otherwise the only standup the member is part of.
func (s *standupService) replyTarget(ctx context.Context, memberID, tenantID string) (*entity.Standup, error) {
	if tenantID != "" {
		standup, err := s.dm.Standup().GetByID(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get standup: %w", err)
		}
		if standup == nil || !standup.HasMember(memberID) {
			return nil, domain.ErrNotMember
		}
		return standup, nil
	}

	standups, err := s.dm.Standup().FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member standups: %w", err)
	}

	switch len(standups) {
	case 0:
		return nil, domain.ErrNotMember
	case 1:
		return standups[0], nil
	}

	ids := make([]string, 0, len(standups))
	for _, st := range standups {
		ids = append(ids, st.ID)
	}
	return nil, &domain.AmbiguousStandupError{TenantIDs: ids}
}

// MemberResponses returns the member's current response per tenant.
func (s *standupService) MemberResponses(ctx context.Context, memberID string) (map[string]string, error) {
	standups, err := s.dm.Standup().FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member standups: %w", err)
	}
	if len(standups) == 0 {
		return nil, domain.ErrNotMember
	}

	responses := make(map[string]string)
	for _, st := range standups {
		if r, ok := st.Responses[memberID]; ok {
			responses[st.ID] = r
		}
	}
	return responses, nil
}

func (s *standupService) ResetResponses(ctx context.Context, tenantID string) error {
	if _, err := s.GetStandup(ctx, tenantID); err != nil {
		return err
	}

	if err := s.dm.Standup().ClearResponses(ctx, tenantID); err != nil {
		return err
	}

	s.log.Info("responses cleared", zap.String("tenant_id", tenantID))
	return nil
}
