package bot

import (
	"time"

	waProto "go.mau.fi/whatsmeow/binary/proto"
)

// Message is an immutable snapshot of one inbound chat message. The router
// owns it for the duration of a single dispatch.
type Message struct {
	ID        string
	Sender    string // sender JID
	Chat      string // origin chat JID; group chats use the @g.us server
	IsGroup   bool
	Body      string
	Timestamp time.Time
	Type      string
	HasMedia  bool
	Mentions  []string // JIDs mentioned in the message, if any

	// Image is the raw attachment payload reference, set by the whatsmeow
	// adapter and only read back by it when the router asks for a download.
	Image *waProto.ImageMessage
}

// ChatState is the per-chat metadata fetched fresh for every message.
type ChatState struct {
	Archived bool
	Muted    bool
}
