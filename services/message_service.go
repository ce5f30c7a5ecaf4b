//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/domain/event"
	"chat-core/errors"
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// PostMessageRequest is the client-shaped input of a message creation.
// Shape constraints are checked here; membership rules are domain checks.
type PostMessageRequest struct {
	ConversationID string `validate:"required"`
	Body           string `validate:"required,max=4000"`
	Metadata       map[string]any
	Attachment     string
}

type IMessageService interface {
	Post(ctx context.Context, req PostMessageRequest) (domain.Message, error)
	Edit(ctx context.Context, id uuid.UUID, body string) (domain.Message, error)
}

type MessageService struct {
	log           *slog.Logger
	conversations contract.IConversationRepository
	messages      contract.IMessageRepository
	index         contract.MessageIndex
	publisher     contract.EventPublisher
	identity      contract.Identity
	now           func() time.Time
}

func NewMessageService(
	log *slog.Logger,
	conversations contract.IConversationRepository,
	messages contract.IMessageRepository,
	index contract.MessageIndex,
	publisher contract.EventPublisher,
	identity contract.Identity,
) *MessageService {
	return &MessageService{
		log:           log,
		conversations: conversations,
		messages:      messages,
		index:         index,
		publisher:     publisher,
		identity:      identity,
		now:           time.Now,
	}
}

func (s *MessageService) Post(ctx context.Context, req PostMessageRequest) (domain.Message, error) {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return domain.Message{}, err
	}

	if err := validate.Struct(req); err != nil {
		return domain.Message{}, err
	}

	conversation, err := s.conversations.Get(req.ConversationID)
	if err != nil {
		return domain.Message{}, err
	}
	if !conversation.Participants().Contains(actor) {
		return domain.Message{}, errors.ErrPermissionDenied
	}

	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: req.ConversationID,
		CreatedBy:      actor,
		Body:           req.Body,
		Metadata:       req.Metadata,
		CreatedAt:      s.now().UTC(),
	}
	if req.Attachment != "" {
		message.Attachment = &domain.Attachment{Name: req.Attachment}
	}

	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}

	// Best-effort: a failed index entry never fails the committed message.
	if s.index != nil {
		if err := s.index.Index(message); err != nil {
			s.log.Warn("Message indexing failed", "message", message.ID, "error", err)
		}
	}

	for _, recipientID := range conversation.Participants().Values() {
		s.publisher.Publish(event.RecordChange{
			RecipientID: recipientID,
			Entity:      event.EntityMessage,
			Action:      event.ActionCreate,
			Record:      message,
		})
	}
	return message, nil
}

// Edit always fails: messages are immutable once committed, so no field may
// change and no update event ever exists.
func (s *MessageService) Edit(ctx context.Context, id uuid.UUID, body string) (domain.Message, error) {
	return domain.Message{}, errors.ErrMessageImmutable
}
