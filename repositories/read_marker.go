//go:generate go run go.uber.org/mock/mockgen -source=read_marker.go -destination=../mocks/mock_read_marker_repository.go -package=mocks
package repositories

import (
	"chat-core/domain"
	"encoding/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ReadMarkerRepository stores one row per (user, conversation). The marker
// only references a message id; ordering checks resolve timestamps through
// the message repository.
type ReadMarkerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReadMarkerRepository(db *badger.DB, log *slog.Logger) ReadMarkerRepository {
	return ReadMarkerRepository{db: db, log: log}
}

type diskReadMarker struct {
	MessageID string `json:"message_id"`
}

func readMarkerKey(conversationID, userID string) []byte {
	return []byte("read:" + conversationID + ":" + userID)
}

func (r ReadMarkerRepository) Get(conversationID, userID string) (domain.ReadMarker, bool, error) {
	var disk diskReadMarker
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(readMarkerKey(conversationID, userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.ReadMarker{}, false, nil
	}
	if err != nil {
		return domain.ReadMarker{}, false, err
	}
	messageID, err := uuid.Parse(disk.MessageID)
	if err != nil {
		return domain.ReadMarker{}, false, err
	}
	return domain.ReadMarker{
		ConversationID: conversationID,
		UserID:         userID,
		MessageID:      messageID,
	}, true, nil
}

func (r ReadMarkerRepository) Save(marker domain.ReadMarker) error {
	bytes, err := json.Marshal(diskReadMarker{MessageID: marker.MessageID.String()})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(readMarkerKey(marker.ConversationID, marker.UserID), bytes)
	})
}
