//go:generate go run go.uber.org/mock/mockgen -source=query_service.go -destination=../mocks/mock_query_service.go -package=mocks
package services

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// MessageView is the read-path shape of a message. The attachment field is
// omitted entirely when the message carries none.
type MessageView struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	Body           string          `json:"body"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	Attachment     *AttachmentView `json:"attachment,omitempty"`
}

type AttachmentView struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type IQueryService interface {
	GetMessages(ctx context.Context, conversationID string, limit int, beforeTime *time.Time) ([]MessageView, error)
	SearchMessages(ctx context.Context, conversationID, query string, limit int) ([]MessageView, error)
}

// QueryService serves participant-gated message reads with attachment
// resolution. Permission failures short-circuit before any data is read.
type QueryService struct {
	log           *slog.Logger
	conversations contract.IConversationRepository
	messages      contract.IMessageRepository
	index         contract.MessageIndex
	signer        contract.AssetSigner
	identity      contract.Identity
}

func NewQueryService(
	log *slog.Logger,
	conversations contract.IConversationRepository,
	messages contract.IMessageRepository,
	index contract.MessageIndex,
	signer contract.AssetSigner,
	identity contract.Identity,
) *QueryService {
	return &QueryService{
		log:           log,
		conversations: conversations,
		messages:      messages,
		index:         index,
		signer:        signer,
		identity:      identity,
	}
}

func (s *QueryService) GetMessages(ctx context.Context, conversationID string, limit int, beforeTime *time.Time) ([]MessageView, error) {
	if err := s.authorize(ctx, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.messages.Page(conversationID, limit, beforeTime)
	if err != nil {
		return nil, err
	}
	return s.toViews(messages)
}

// SearchMessages ranks the conversation's messages against a full-text
// query. Same access rule as GetMessages.
func (s *QueryService) SearchMessages(ctx context.Context, conversationID, query string, limit int) ([]MessageView, error) {
	if err := s.authorize(ctx, conversationID); err != nil {
		return nil, err
	}

	ids, err := s.index.Search(ctx, conversationID, query, limit)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for _, id := range ids {
		message, err := s.messages.GetByID(conversationID, id)
		if err == errors.ErrMessageNotFound {
			// Index entry outlived its record; skip rather than fail the page.
			s.log.Debug("Stale index hit", "conversation", conversationID, "message", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return s.toViews(messages)
}

func (s *QueryService) authorize(ctx context.Context, conversationID string) error {
	actor, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}
	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		return err
	}
	if !conversation.Participants().Contains(actor) {
		return errors.ErrPermissionDenied
	}
	return nil
}

func (s *QueryService) toViews(messages []domain.Message) ([]MessageView, error) {
	views := make([]MessageView, 0, len(messages))
	for _, message := range messages {
		view := MessageView{
			ID:             message.ID.String(),
			ConversationID: message.ConversationID,
			CreatedBy:      message.CreatedBy,
			CreatedAt:      message.CreatedAt,
			Body:           message.Body,
			Metadata:       message.Metadata,
		}
		if message.Attachment != nil {
			url, err := s.signer.Sign(message.Attachment.Name)
			if err != nil {
				return nil, fmt.Errorf("signing attachment %q: %w", message.Attachment.Name, err)
			}
			view.Attachment = &AttachmentView{Name: message.Attachment.Name, URL: url}
		}
		views = append(views, view)
	}
	return views, nil
}
