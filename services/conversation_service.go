//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks
package services

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/domain/event"
	"chat-core/errors"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type IConversationService interface {
	Create(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error)
	Update(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error)
	Delete(ctx context.Context, id string) error
}

// ConversationService enforces the conversation lifecycle invariants and
// fans change events out to every affected participant after commit.
type ConversationService struct {
	log           *slog.Logger
	conversations contract.IConversationRepository
	identity      contract.Identity
	publisher     contract.EventPublisher
}

func NewConversationService(
	log *slog.Logger,
	conversations contract.IConversationRepository,
	identity contract.Identity,
	publisher contract.EventPublisher,
) *ConversationService {
	return &ConversationService{
		log:           log,
		conversations: conversations,
		identity:      identity,
		publisher:     publisher,
	}
}

// validateConversation applies the membership invariants and field
// defaulting shared by create and update. Pure: no store access.
func validateConversation(c domain.Conversation) (domain.Conversation, error) {
	c = c.Normalized()
	if len(c.ParticipantIDs) == 0 {
		return c, errors.ErrInvalidParticipants
	}
	if c.IsDirectMessage {
		if len(c.ParticipantIDs) != 2 {
			return c, errors.ErrInvalidDirectMessage
		}
		c.AdminIDs = append([]string(nil), c.ParticipantIDs...)
	}
	if len(c.AdminIDs) == 0 {
		c.AdminIDs = append([]string(nil), c.ParticipantIDs...)
	}
	return c, nil
}

func (s *ConversationService) Create(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error) {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return domain.Conversation{}, err
	}

	conversation, err = validateConversation(conversation)
	if err != nil {
		return domain.Conversation{}, err
	}

	// Nobody may open a direct conversation on behalf of two other users.
	if conversation.IsDirectMessage && !conversation.Participants().Contains(actor) {
		return domain.Conversation{}, errors.ErrPermissionDenied
	}

	if conversation.ID == "" {
		conversation.ID = uuid.NewString()
	}
	if err := s.conversations.Save(conversation); err != nil {
		return domain.Conversation{}, err
	}

	s.notify(conversation.Participants(), event.ActionCreate, conversation, nil)
	return conversation, nil
}

func (s *ConversationService) Update(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error) {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return domain.Conversation{}, err
	}

	previous, err := s.conversations.Get(conversation.ID)
	if err != nil {
		return domain.Conversation{}, err
	}

	conversation, err = validateConversation(conversation)
	if err != nil {
		return domain.Conversation{}, err
	}

	// Admin rights are checked against the authoritative previous record,
	// re-read at decision time, never against client-supplied state.
	if !previous.Admins().Contains(actor) {
		return domain.Conversation{}, errors.ErrPermissionDenied
	}

	if err := s.conversations.Save(conversation); err != nil {
		return domain.Conversation{}, err
	}

	// Departed participants still learn about the update that removed them.
	recipients := conversation.Participants().Union(previous.Participants())
	s.notify(recipients, event.ActionUpdate, conversation, previous)
	return conversation, nil
}

func (s *ConversationService) Delete(ctx context.Context, id string) error {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}

	record, err := s.conversations.Get(id)
	if err != nil {
		return err
	}
	if !record.Admins().Contains(actor) {
		return errors.ErrPermissionDenied
	}

	if err := s.conversations.Delete(id); err != nil {
		return err
	}

	s.notify(record.Participants(), event.ActionDelete, record, nil)
	return nil
}

func (s *ConversationService) notify(recipients domain.UserSet, action event.Action, record domain.Conversation, original any) {
	for _, recipientID := range recipients.Values() {
		s.publisher.Publish(event.RecordChange{
			RecipientID: recipientID,
			Entity:      event.EntityConversation,
			Action:      action,
			Record:      record,
			Original:    original,
		})
	}
}
