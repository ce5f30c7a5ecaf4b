// Package domain contains core concepts of the chat system.
// This file defines Conversation records and their membership invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/samber/lo"

// Conversation is a membership record shared by its participants.
// Admins hold mutation and deletion rights. A direct message is a
// conversation restricted to exactly two participants, both admins.
type Conversation struct {
	ID              string
	ParticipantIDs  []string
	AdminIDs        []string
	IsDirectMessage bool
}

// Normalized deduplicates the membership lists while keeping their order.
// Duplicate entries supplied by clients must never inflate fan-out or
// grant anything twice.
func (c Conversation) Normalized() Conversation {
	c.ParticipantIDs = lo.Uniq(c.ParticipantIDs)
	c.AdminIDs = lo.Uniq(c.AdminIDs)
	return c
}

func (c Conversation) Participants() UserSet {
	return NewUserSet(c.ParticipantIDs...)
}

func (c Conversation) Admins() UserSet {
	return NewUserSet(c.AdminIDs...)
}
