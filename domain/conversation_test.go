package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversation_Normalized(t *testing.T) {
	req := require.New(t)

	conversation := Conversation{
		ParticipantIDs: []string{"alice", "bob", "alice"},
		AdminIDs:       []string{"bob", "bob"},
	}.Normalized()

	// Order survives, duplicates do not.
	req.Equal([]string{"alice", "bob"}, conversation.ParticipantIDs)
	req.Equal([]string{"bob"}, conversation.AdminIDs)
}

func TestConversation_Membership_Sets(t *testing.T) {
	req := require.New(t)

	conversation := Conversation{
		ParticipantIDs: []string{"alice", "bob"},
		AdminIDs:       []string{"alice"},
	}

	req.True(conversation.Participants().Contains("bob"))
	req.False(conversation.Participants().Contains("mallory"))
	req.True(conversation.Admins().Contains("alice"))
	req.False(conversation.Admins().Contains("bob"))
}

func TestUserSet(t *testing.T) {
	req := require.New(t)

	set := NewUserSet("clara", "alice", "bob", "alice")
	req.Equal(3, set.Len())
	req.Equal([]string{"alice", "bob", "clara"}, set.Values())

	merged := set.Union(NewUserSet("bob", "dave"))
	req.Equal([]string{"alice", "bob", "clara", "dave"}, merged.Values())
}
