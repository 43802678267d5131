package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// WhatsApp adapts a whatsmeow client to the Transport interface.
type WhatsApp struct {
	client *whatsmeow.Client
	logger *zap.Logger
}

func NewWhatsApp(client *whatsmeow.Client, logger *zap.Logger) *WhatsApp {
	return &WhatsApp{client: client, logger: logger}
}

func (w *WhatsApp) Reply(ctx context.Context, msg *Message, text string) error {
	jid, err := types.ParseJID(msg.Chat)
	if err != nil {
		return fmt.Errorf("parse chat jid: %w", err)
	}
	_, err = w.client.SendMessage(ctx, jid, &waProto.Message{
		Conversation: proto.String(text),
	})
	return err
}

func (w *WhatsApp) SendSticker(ctx context.Context, chatJID string, media []byte, label string) error {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return fmt.Errorf("parse chat jid: %w", err)
	}
	up, err := w.client.Upload(ctx, media, whatsmeow.MediaImage)
	if err != nil {
		return fmt.Errorf("upload sticker media: %w", err)
	}
	_, err = w.client.SendMessage(ctx, jid, &waProto.Message{
		StickerMessage: &waProto.StickerMessage{
			URL:                proto.String(up.URL),
			DirectPath:         proto.String(up.DirectPath),
			MediaKey:           up.MediaKey,
			Mimetype:           proto.String("image/webp"),
			FileEncSHA256:      up.FileEncSHA256,
			FileSHA256:         up.FileSHA256,
			FileLength:         proto.Uint64(up.FileLength),
			AccessibilityLabel: proto.String(label),
		},
	})
	return err
}

func (w *WhatsApp) DownloadMedia(ctx context.Context, msg *Message) ([]byte, error) {
	if msg.Image == nil {
		return nil, errors.New("message has no media attachment")
	}
	return w.client.Download(ctx, msg.Image)
}

func (w *WhatsApp) ChatState(ctx context.Context, chatJID string) (ChatState, error) {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return ChatState{}, fmt.Errorf("parse chat jid: %w", err)
	}
	settings, err := w.client.Store.ChatSettings.GetChatSettings(ctx, jid)
	if err != nil {
		return ChatState{}, fmt.Errorf("get chat settings: %w", err)
	}
	return ChatState{
		Archived: settings.Archived,
		Muted:    settings.MutedUntil.After(time.Now()),
	}, nil
}

func (w *WhatsApp) Composing(ctx context.Context, chatJID string) {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return
	}
	err = w.client.SendChatPresence(ctx, jid, types.ChatPresenceComposing, types.ChatPresenceMediaText)
	if err != nil {
		w.logger.Debug("chat presence failed", zap.String("chat", chatJID), zap.Error(err))
	}
}

func (w *WhatsApp) SelfID() string {
	if id := w.client.Store.ID; id != nil {
		return id.String()
	}
	return ""
}

// MessageFromEvent maps a whatsmeow message event to the router's shape.
// It returns nil for traffic the router never sees: the bot's own outgoing
// messages, status broadcasts, and events with no body or media.
func MessageFromEvent(evt *events.Message) *Message {
	if evt.Info.IsFromMe || evt.Info.Chat.User == "status" {
		return nil
	}

	msg := &Message{
		ID:        evt.Info.ID,
		Sender:    evt.Info.Sender.String(),
		Chat:      evt.Info.Chat.String(),
		IsGroup:   evt.Info.IsGroup,
		Timestamp: evt.Info.Timestamp,
		Type:      evt.Info.Type,
	}

	if text := evt.Message.GetConversation(); text != "" {
		msg.Body = text
	} else if ext := evt.Message.GetExtendedTextMessage(); ext != nil {
		msg.Body = ext.GetText()
		msg.Mentions = ext.GetContextInfo().GetMentionedJID()
	}

	if img := evt.Message.GetImageMessage(); img != nil {
		msg.HasMedia = true
		msg.Image = img
		if msg.Body == "" {
			msg.Body = img.GetCaption()
		}
		if msg.Mentions == nil {
			msg.Mentions = img.GetContextInfo().GetMentionedJID()
		}
	}

	if msg.Body == "" && !msg.HasMedia {
		return nil
	}
	return msg
}
