//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const tsDigits = 19

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type diskMessage struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	CreatedBy      string         `json:"created_by"`
	Body           string         `json:"body"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Attachment     string         `json:"attachment,omitempty"`
	At             int64          `json:"at"`
}

// Message keys are "msg:{conversation_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
//
// A second "msgref:{conversation_id}:{uuid}" entry points at the primary key so
// that a message can also be resolved by id without scanning the prefix.
func messageKey(conversationID string, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", conversationID, at.UnixNano(), id))
}

func messageRefKey(conversationID string, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msgref:%s:%s", conversationID, id))
}

func messagePrefix(conversationID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", conversationID))
}

// StoreMessage persists the message and its id reference in one transaction.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	bytes, err := json.Marshal(fromMessage(message))
	if err != nil {
		return err
	}
	primary := messageKey(message.ConversationID, message.CreatedAt, message.ID)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, bytes); err != nil {
			return err
		}
		return txn.Set(messageRefKey(message.ConversationID, message.ID), primary)
	})
}

func (m MessageRepository) GetByID(conversationID string, id uuid.UUID) (domain.Message, error) {
	var disk diskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		primary, err := m.primaryKey(txn, conversationID, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(primary)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(disk)
}

// Page retrieves messages in reverse chronological order using a reverse
// prefix scan. A before cursor restricts the scan to keys strictly older
// than the cursor timestamp; equal timestamps belong to the previous page.
func (m MessageRepository) Page(conversationID string, limit int, before *time.Time) ([]domain.Message, error) {
	if m.limitMessages != nil && (limit <= 0 || limit > *m.limitMessages) {
		limit = *m.limitMessages
	}

	var byteMessages [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(conversationID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch before {
		case nil:
			// Start past the newest possible timestamp and walk backwards.
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		default:
			// Land on the last key with a timestamp strictly below the cursor.
			seekKey = append(append([]byte{}, prefix...), []byte(fmt.Sprintf("%019d", before.UnixNano()-1))...)
			seekKey = append(seekKey, 0xff)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(byteMessages) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for _, b := range byteMessages {
		var disk diskMessage
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		message, err := toMessage(disk)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (m MessageRepository) CountAll(conversationID string) (int, error) {
	prefix := messagePrefix(conversationID)
	return m.countFrom(prefix, prefix)
}

// CountAfter counts the messages with a created timestamp strictly greater
// than after. The seek key "{padded_after}\xff" sorts past every key sharing
// the after timestamp, so equal timestamps are never counted.
func (m MessageRepository) CountAfter(conversationID string, after time.Time) (int, error) {
	prefix := messagePrefix(conversationID)
	seekKey := append(append([]byte{}, prefix...), []byte(fmt.Sprintf("%019d", after.UnixNano()))...)
	seekKey = append(seekKey, 0xff)
	return m.countFrom(prefix, seekKey)
}

func (m MessageRepository) countFrom(prefix, seekKey []byte) (int, error) {
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ResolvePair resolves the created timestamps of the new read position and of
// the previous one inside a single view transaction. Badger views run on one
// snapshot, which is what keeps a concurrent regression from slipping between
// two separate lookups.
func (m MessageRepository) ResolvePair(conversationID string, newID uuid.UUID, oldID *uuid.UUID) (contract.MessagePair, error) {
	var pair contract.MessagePair
	err := m.db.View(func(txn *badger.Txn) error {
		newAt, err := m.createdAt(txn, conversationID, newID)
		if err != nil {
			return err
		}
		pair.NewCreatedAt = newAt

		if oldID == nil {
			return nil
		}
		oldAt, err := m.createdAt(txn, conversationID, *oldID)
		if err == badger.ErrKeyNotFound {
			// No old row means no ordering constraint to enforce.
			return nil
		}
		if err != nil {
			return err
		}
		pair.OldCreatedAt = &oldAt
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return contract.MessagePair{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return contract.MessagePair{}, err
	}
	return pair, nil
}

// createdAt extracts the commit timestamp of a message from its primary key.
// The timestamp is part of the key, so the value never needs to be loaded.
func (m MessageRepository) createdAt(txn *badger.Txn, conversationID string, id uuid.UUID) (time.Time, error) {
	primary, err := m.primaryKey(txn, conversationID, id)
	if err != nil {
		return time.Time{}, err
	}
	offset := len(messagePrefix(conversationID))
	if len(primary) < offset+tsDigits {
		return time.Time{}, fmt.Errorf("malformed message key %q", primary)
	}
	nanos, err := strconv.ParseInt(string(primary[offset:offset+tsDigits]), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed message key %q: %w", primary, err)
	}
	return time.Unix(0, nanos).UTC(), nil
}

func (m MessageRepository) primaryKey(txn *badger.Txn, conversationID string, id uuid.UUID) ([]byte, error) {
	item, err := txn.Get(messageRefKey(conversationID, id))
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func fromMessage(message domain.Message) diskMessage {
	disk := diskMessage{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID,
		CreatedBy:      message.CreatedBy,
		Body:           message.Body,
		Metadata:       message.Metadata,
		At:             message.CreatedAt.UnixNano(),
	}
	if message.Attachment != nil {
		disk.Attachment = message.Attachment.Name
	}
	return disk
}

func toMessage(disk diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{
		ID:             parsedID,
		ConversationID: disk.ConversationID,
		CreatedBy:      disk.CreatedBy,
		Body:           disk.Body,
		Metadata:       disk.Metadata,
		CreatedAt:      time.Unix(0, disk.At).UTC(),
	}
	if disk.Attachment != "" {
		message.Attachment = &domain.Attachment{Name: disk.Attachment}
	}
	return message, nil
}
