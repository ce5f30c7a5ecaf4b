package services_test

import (
	"chat-core/auth"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/services"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type queryServiceMocks struct {
	conversations *mocks.MockIConversationRepository
	messages      *mocks.MockIMessageRepository
	index         *mocks.MockMessageIndex
	signer        *mocks.MockAssetSigner
}

func newQueryService(t *testing.T) (*services.QueryService, queryServiceMocks) {
	ctrl := gomock.NewController(t)
	m := queryServiceMocks{
		conversations: mocks.NewMockIConversationRepository(ctrl),
		messages:      mocks.NewMockIMessageRepository(ctrl),
		index:         mocks.NewMockMessageIndex(ctrl),
		signer:        mocks.NewMockAssetSigner(ctrl),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := services.NewQueryService(log, m.conversations, m.messages, m.index, m.signer, auth.ContextIdentity{})
	return service, m
}

func TestQueryService_GetMessages_NonParticipant_Short_Circuits(t *testing.T) {
	req := require.New(t)
	service, m := newQueryService(t)
	ctx := auth.WithUser(context.Background(), "mallory")

	conversation := domain.Conversation{ID: "conv-1", ParticipantIDs: []string{"alice", "bob"}}
	m.conversations.EXPECT().Get("conv-1").Return(conversation, nil)

	// No Page expectation: the store must not be touched.
	_, err := service.GetMessages(ctx, "conv-1", 10, nil)
	req.ErrorIs(err, errors.ErrPermissionDenied)
}

func TestQueryService_GetMessages_Signs_Attachments(t *testing.T) {
	req := require.New(t)
	service, m := newQueryService(t)
	ctx := auth.WithUser(context.Background(), "alice")

	conversation := domain.Conversation{ID: "conv-1", ParticipantIDs: []string{"alice"}}
	at := time.Now().UTC()
	withAttachment := domain.Message{
		ID:             uuid.New(),
		ConversationID: "conv-1",
		CreatedBy:      "alice",
		Body:           "see attached",
		Attachment:     &domain.Attachment{Name: "report.pdf"},
		CreatedAt:      at,
	}
	plain := domain.Message{
		ID:             uuid.New(),
		ConversationID: "conv-1",
		CreatedBy:      "alice",
		Body:           "no attachment",
		CreatedAt:      at.Add(-1 * time.Minute),
	}

	m.conversations.EXPECT().Get("conv-1").Return(conversation, nil)
	m.messages.EXPECT().Page("conv-1", 10, nil).Return([]domain.Message{withAttachment, plain}, nil)
	// The signer runs once: plain messages never reach it.
	m.signer.EXPECT().Sign("report.pdf").Return("https://assets.local/report.pdf?expires=1&signature=abc", nil)

	views, err := service.GetMessages(ctx, "conv-1", 10, nil)
	req.NoError(err)
	req.Len(views, 2)
	req.NotNil(views[0].Attachment)
	req.Equal("report.pdf", views[0].Attachment.Name)
	req.Equal("https://assets.local/report.pdf?expires=1&signature=abc", views[0].Attachment.URL)
	req.Nil(views[1].Attachment)
}

func TestQueryService_GetMessages_Forwards_Cursor(t *testing.T) {
	req := require.New(t)
	service, m := newQueryService(t)
	ctx := auth.WithUser(context.Background(), "alice")

	conversation := domain.Conversation{ID: "conv-1", ParticipantIDs: []string{"alice"}}
	before := time.Now().UTC()

	m.conversations.EXPECT().Get("conv-1").Return(conversation, nil)
	m.messages.EXPECT().Page("conv-1", 5, &before).Return(nil, nil)

	views, err := service.GetMessages(ctx, "conv-1", 5, &before)
	req.NoError(err)
	req.Empty(views)
}

func TestQueryService_SearchMessages_Skips_Stale_Hits(t *testing.T) {
	req := require.New(t)
	service, m := newQueryService(t)
	ctx := auth.WithUser(context.Background(), "alice")

	conversation := domain.Conversation{ID: "conv-1", ParticipantIDs: []string{"alice"}}
	live := domain.Message{
		ID:             uuid.New(),
		ConversationID: "conv-1",
		CreatedBy:      "alice",
		Body:           "badger keeps this one",
		CreatedAt:      time.Now().UTC(),
	}
	staleID := uuid.New()

	m.conversations.EXPECT().Get("conv-1").Return(conversation, nil)
	m.index.EXPECT().Search(gomock.Any(), "conv-1", "badger", 20).Return([]uuid.UUID{live.ID, staleID}, nil)
	m.messages.EXPECT().GetByID("conv-1", live.ID).Return(live, nil)
	m.messages.EXPECT().GetByID("conv-1", staleID).Return(domain.Message{}, errors.ErrMessageNotFound)

	views, err := service.SearchMessages(ctx, "conv-1", "badger", 20)
	req.NoError(err)
	req.Len(views, 1)
	req.Equal(live.ID.String(), views[0].ID)
}

func TestQueryService_Requires_Identity(t *testing.T) {
	req := require.New(t)
	service, _ := newQueryService(t)

	_, err := service.GetMessages(context.Background(), "conv-1", 10, nil)
	req.ErrorIs(err, auth.ErrMissingIdentity)

	_, err = service.SearchMessages(context.Background(), "conv-1", "anything", 10)
	req.ErrorIs(err, auth.ErrMissingIdentity)
}
