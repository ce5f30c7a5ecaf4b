//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"chat-core/domain"
	"chat-core/errors"
	"encoding/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) ConversationRepository {
	return ConversationRepository{db: db, log: log}
}

// diskConversation is the stored shape of a conversation record.
// Metadata-free and schemaless enough that JSON is the natural codec.
type diskConversation struct {
	ID              string   `json:"id"`
	ParticipantIDs  []string `json:"participant_ids"`
	AdminIDs        []string `json:"admin_ids"`
	IsDirectMessage bool     `json:"is_direct_message"`
}

func conversationKey(id string) []byte {
	return []byte("conv:" + id)
}

func (r ConversationRepository) Get(id string) (domain.Conversation, error) {
	var disk diskConversation
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(conversationKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	return toConversation(disk), nil
}

func (r ConversationRepository) Save(conversation domain.Conversation) error {
	bytes, err := json.Marshal(fromConversation(conversation))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(conversationKey(conversation.ID), bytes)
	})
}

func (r ConversationRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(conversationKey(id))
	})
}

func fromConversation(conversation domain.Conversation) diskConversation {
	return diskConversation{
		ID:              conversation.ID,
		ParticipantIDs:  conversation.ParticipantIDs,
		AdminIDs:        conversation.AdminIDs,
		IsDirectMessage: conversation.IsDirectMessage,
	}
}

func toConversation(disk diskConversation) domain.Conversation {
	return domain.Conversation{
		ID:              disk.ID,
		ParticipantIDs:  disk.ParticipantIDs,
		AdminIDs:        disk.AdminIDs,
		IsDirectMessage: disk.IsDirectMessage,
	}
}
