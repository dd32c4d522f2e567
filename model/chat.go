package model

import "time"

type Ref struct {
	ID string `json:"_id" validate:"required"`
}

type Chat struct {
	ID         string `json:"_id" validate:"required"`
	Vendor     Ref    `json:"vendor"`
	Interested Ref    `json:"interested"`
	Product    Ref    `json:"product"`
}

// Counterparty returns the id of the other participant for the given viewer.
func (c Chat) Counterparty(viewerID string) string {
	if c.Vendor.ID == viewerID {
		return c.Interested.ID
	}
	return c.Vendor.ID
}

// IsParticipant reports whether the viewer is one of the two chat parties.
func (c Chat) IsParticipant(viewerID string) bool {
	return viewerID != "" && (c.Vendor.ID == viewerID || c.Interested.ID == viewerID)
}

type Message struct {
	ID        string `json:"_id,omitempty"`
	Chat      Ref    `json:"chat"`
	Origin    Ref    `json:"origin"`
	Text      string `json:"text"`
	Timestamp Time   `json:"timestamp"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type StartChatRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type ProductSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	FromMe    bool      `json:"from_me"`
}

// ChatSummary is a chat list entry joined with its product, counterparty and last message.
type ChatSummary struct {
	ID          string         `json:"id"`
	Product     ProductSummary `json:"product"`
	User        UserSummary    `json:"user"`
	LastMessage *LastMessage   `json:"last_message,omitempty"`
}

type ChatListView struct {
	Loaded bool          `json:"loaded"`
	Chats  []ChatSummary `json:"chats"`
}

type ThreadMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Mine      bool      `json:"mine"`
}

type ChatThreadView struct {
	ID       string          `json:"id"`
	Product  ProductSummary  `json:"product"`
	Messages []ThreadMessage `json:"messages"`
}
