//go:generate go run go.uber.org/mock/mockgen -source=read_position_service.go -destination=../mocks/mock_read_position_service.go -package=mocks
package services

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type IReadPositionService interface {
	SetReadPosition(ctx context.Context, conversationID string, messageID *uuid.UUID) error
	UnreadCount(ctx context.Context, conversationID string) (int, error)
}

// ReadPositionService keeps each user's last-read marker monotonic in
// message time and answers unread-count queries relative to it.
type ReadPositionService struct {
	log      *slog.Logger
	messages contract.IMessageRepository
	markers  contract.IReadMarkerRepository
	identity contract.Identity
}

func NewReadPositionService(
	log *slog.Logger,
	messages contract.IMessageRepository,
	markers contract.IReadMarkerRepository,
	identity contract.Identity,
) *ReadPositionService {
	return &ReadPositionService{
		log:      log,
		messages: messages,
		markers:  markers,
		identity: identity,
	}
}

func (s *ReadPositionService) SetReadPosition(ctx context.Context, conversationID string, messageID *uuid.UUID) error {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}

	// An absent message id carries no constraint to check.
	if messageID == nil {
		return nil
	}

	previous, found, err := s.markers.Get(conversationID, actor)
	if err != nil {
		return err
	}
	var oldID *uuid.UUID
	if found {
		oldID = &previous.MessageID
	}

	// Both timestamps come from one store snapshot; two sequential reads
	// would leave a window for a concurrent regression to slip through.
	pair, err := s.messages.ResolvePair(conversationID, *messageID, oldID)
	if err != nil {
		return err
	}
	if pair.OldCreatedAt != nil && pair.NewCreatedAt.Before(*pair.OldCreatedAt) {
		return errors.ErrStaleReadPosition
	}

	return s.markers.Save(domain.ReadMarker{
		ConversationID: conversationID,
		UserID:         actor,
		MessageID:      *messageID,
	})
}

func (s *ReadPositionService) UnreadCount(ctx context.Context, conversationID string) (int, error) {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return 0, err
	}

	marker, found, err := s.markers.Get(conversationID, actor)
	if err != nil {
		return 0, err
	}
	if !found {
		return s.messages.CountAll(conversationID)
	}

	pair, err := s.messages.ResolvePair(conversationID, marker.MessageID, nil)
	if err != nil {
		return 0, err
	}
	// Strictly greater: a marker on the newest message yields zero.
	return s.messages.CountAfter(conversationID, pair.NewCreatedAt)
}
