// Package event defines the ephemeral record-change events fanned out to
// participants after a successful commit. Events are not persisted by this
// core; durability, if any, is the transport's concern.
package event

type Entity string

const (
	EntityConversation Entity = "conversation"
	EntityMessage      Entity = "message"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// RecordChange notifies one recipient of one committed mutation.
// Original carries the pre-mutation record on updates, nil otherwise.
type RecordChange struct {
	RecipientID string
	Entity      Entity
	Action      Action
	Record      any
	Original    any
}
