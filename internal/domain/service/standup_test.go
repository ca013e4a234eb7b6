package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_standupService_AddMember(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should add member",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G1").Return(entity.NewStandup("G1", "C1"), nil)
				m.mockStandupRepo.EXPECT().AddMember(ctx, "G1", "u1").Return(nil)
			},
		},
		{
			name: "Should fail for unknown standup",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G1").Return(nil, nil)
			},
			wantErr: domain.ErrStandupNotFound,
		},
		{
			name: "Should report duplicate member",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G1").Return(entity.NewStandup("G1", "C1"), nil)
				m.mockStandupRepo.EXPECT().AddMember(ctx, "G1", "u1").Return(domain.ErrMemberExists)
			},
			wantErr: domain.ErrMemberExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
			err := s.AddMember(ctx, "G1", "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_standupService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should remove member and their response",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().RemoveMember(ctx, "G1", "u1").Return(true, nil)
				m.mockStandupRepo.EXPECT().DeleteResponse(ctx, "G1", "u1").Return(nil)
			},
		},
		{
			name: "Should report a member not on the roster",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().RemoveMember(ctx, "G1", "u1").Return(false, nil)
			},
			wantErr: domain.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
			err := s.RemoveMember(ctx, "G1", "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_standupService_SubmitResponse(t *testing.T) {
	ctx := context.Background()
	g1 := &entity.Standup{ID: "G1", Members: []string{"u1"}, Responses: map[string]string{}}
	g2 := &entity.Standup{ID: "G2", Members: []string{"u1"}, Responses: map[string]string{}}

	tests := []struct {
		name       string
		tenantID   string
		buildMock  func(m allMocks)
		wantTenant string
		wantErr    error
	}{
		{
			name: "Should record response in the only standup",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().FindByMember(ctx, "u1").Return([]*entity.Standup{g1}, nil)
				m.mockStandupRepo.EXPECT().SetResponse(ctx, "G1", "u1", "shipped it").Return(nil)
			},
			wantTenant: "G1",
		},
		{
			name:     "Should use the tenant given by the member",
			tenantID: "G2",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G2").Return(g2, nil)
				m.mockStandupRepo.EXPECT().SetResponse(ctx, "G2", "u1", "shipped it").Return(nil)
			},
			wantTenant: "G2",
		},
		{
			name:     "Should reject a tenant the member does not belong to",
			tenantID: "G3",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G3").Return(&entity.Standup{
					ID:      "G3",
					Members: []string{"u2"},
				}, nil)
			},
			wantErr: domain.ErrNotMember,
		},
		{
			name:     "Should reject an unknown tenant",
			tenantID: "G9",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().GetByID(ctx, "G9").Return(nil, nil)
			},
			wantErr: domain.ErrNotMember,
		},
		{
			name: "Should reject a non member",
			buildMock: func(m allMocks) {
				m.mockStandupRepo.EXPECT().FindByMember(ctx, "u1").Return(nil, nil)
			},
			wantErr: domain.ErrNotMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
			tenant, err := s.SubmitResponse(ctx, "u1", tt.tenantID, "shipped it")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTenant, tenant)
		})
	}

	t.Run("Should ask which standup when the member is in several", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockStandupRepo.EXPECT().FindByMember(ctx, "u1").Return([]*entity.Standup{g1, g2}, nil)

		s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
		_, err := s.SubmitResponse(ctx, "u1", "", "shipped it")

		var ambiguous *domain.AmbiguousStandupError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, []string{"G1", "G2"}, ambiguous.TenantIDs)
	})
}

func Test_standupService_MemberResponses(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return responses per tenant", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockStandupRepo.EXPECT().FindByMember(ctx, "u1").Return([]*entity.Standup{
			{ID: "G1", Responses: map[string]string{"u1": "done"}},
			{ID: "G2", Responses: map[string]string{"u2": "other"}},
		}, nil)

		s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
		responses, err := s.MemberResponses(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"G1": "done"}, responses)
	})

	t.Run("Should reject a non member", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockStandupRepo.EXPECT().FindByMember(ctx, "u1").Return([]*entity.Standup{}, nil)

		s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
		_, err := s.MemberResponses(ctx, "u1")

		assert.ErrorIs(t, err, domain.ErrNotMember)
	})
}

func Test_standupService_ResetResponses(t *testing.T) {
	ctx := context.Background()

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	gomock.InOrder(
		m.mockStandupRepo.EXPECT().GetByID(ctx, "G1").Return(entity.NewStandup("G1", "C1"), nil),
		m.mockStandupRepo.EXPECT().ClearResponses(ctx, "G1").Return(nil),
	)

	s := newStandup(m.mockDataManager, m.mockChatClient, message.Default(), "!", zap.NewNop())
	assert.NoError(t, s.ResetResponses(ctx, "G1"))
}
