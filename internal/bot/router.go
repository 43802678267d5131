// Package bot routes inbound WhatsApp messages to the assistant's handlers.
package bot

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"whatsapp-assistant/internal/classify"
	"whatsapp-assistant/internal/command"
	"whatsapp-assistant/internal/session"
)

// Transport is the messaging collaborator the router talks to.
type Transport interface {
	Reply(ctx context.Context, msg *Message, text string) error
	SendSticker(ctx context.Context, chatJID string, media []byte, label string) error
	DownloadMedia(ctx context.Context, msg *Message) ([]byte, error)
	ChatState(ctx context.Context, chatJID string) (ChatState, error)
	Composing(ctx context.Context, chatJID string)
	SelfID() string
}

// Completer produces an AI reply for a user message.
type Completer interface {
	Complete(ctx context.Context, userText string) (string, error)
}

// StickerMaker converts downloaded media into an outgoing sticker.
type StickerMaker interface {
	Convert(ctx context.Context, chatJID string, media []byte) error
}

// Bot dispatches each inbound message to exactly one handler branch and
// then runs the welcome greeter.
type Bot struct {
	transport Transport
	completer Completer
	stickers  StickerMaker
	modes     *session.Registry
	now       func() time.Time
	logger    *zap.Logger
}

func New(transport Transport, completer Completer, stickers StickerMaker, modes *session.Registry, logger *zap.Logger) *Bot {
	return &Bot{
		transport: transport,
		completer: completer,
		stickers:  stickers,
		modes:     modes,
		now:       time.Now,
		logger:    logger,
	}
}

// Handle processes one inbound message. Group messages that do not mention
// the bot and messages in archived or muted chats are dropped with no reply.
func (b *Bot) Handle(ctx context.Context, msg *Message) {
	b.logger.Info("message received",
		zap.String("chat", msg.Chat),
		zap.String("sender", msg.Sender),
		zap.Bool("group", msg.IsGroup),
		zap.Bool("media", msg.HasMedia))

	if msg.IsGroup && !mentionsSelf(msg.Mentions, b.transport.SelfID()) {
		b.logger.Info("dropping group message without mention", zap.String("chat", msg.Chat))
		return
	}

	state, err := b.transport.ChatState(ctx, msg.Chat)
	if err != nil {
		b.logger.Error("chat state lookup failed", zap.String("chat", msg.Chat), zap.Error(err))
		return
	}
	if state.Archived || state.Muted {
		b.logger.Info("dropping message in archived or muted chat",
			zap.String("chat", msg.Chat),
			zap.Bool("archived", state.Archived),
			zap.Bool("muted", state.Muted))
		return
	}

	b.dispatch(ctx, msg)
	b.maybeGreet(ctx, msg)
}

func (b *Bot) dispatch(ctx context.Context, msg *Message) {
	switch {
	case msg.Body == command.Help:
		b.reply(ctx, msg, command.RenderHelp())

	case msg.Body == command.AIOn:
		b.modes.Enable(msg.Sender)
		b.reply(ctx, msg, replyAIEnabled)

	case msg.Body == command.AIOff && b.modes.Enabled(msg.Sender):
		b.modes.Disable(msg.Sender)
		b.reply(ctx, msg, replyAIDisabled)

	case b.modes.Enabled(msg.Sender):
		b.transport.Composing(ctx, msg.Chat)
		text, err := b.completer.Complete(ctx, msg.Body)
		if err != nil {
			b.logger.Error("completion failed", zap.String("sender", msg.Sender), zap.Error(err))
			text = replyAIUnavailable
		}
		b.reply(ctx, msg, text)

	case classify.IsFarewell(msg.Body):
		b.reply(ctx, msg, replyFarewell)

	case classify.IsGreeting(msg.Body):
		b.reply(ctx, msg, replyGreeting)

	case strings.HasPrefix(msg.Body, command.Sticker):
		b.handleSticker(ctx, msg)

	default:
		b.reply(ctx, msg, replyUnknown)
	}
}

func (b *Bot) handleSticker(ctx context.Context, msg *Message) {
	if !msg.HasMedia {
		b.reply(ctx, msg, replyNeedImage)
		return
	}

	media, err := b.transport.DownloadMedia(ctx, msg)
	if err != nil {
		b.logger.Error("media download failed", zap.String("chat", msg.Chat), zap.Error(err))
		return
	}
	if err := b.stickers.Convert(ctx, msg.Chat, media); err != nil {
		b.logger.Error("sticker conversion failed", zap.String("chat", msg.Chat), zap.Error(err))
	}
}

func (b *Bot) reply(ctx context.Context, msg *Message, text string) {
	if err := b.transport.Reply(ctx, msg, text); err != nil {
		b.logger.Error("reply failed", zap.String("chat", msg.Chat), zap.Error(err))
	}
}

// mentionsSelf matches on the user part of the JIDs so that device and
// agent suffixes do not defeat the comparison.
func mentionsSelf(mentions []string, self string) bool {
	selfUser := jidUser(self)
	if selfUser == "" {
		return false
	}
	for _, m := range mentions {
		if jidUser(m) == selfUser {
			return true
		}
	}
	return false
}

func jidUser(jid string) string {
	user, _, _ := strings.Cut(jid, "@")
	user, _, _ = strings.Cut(user, ":")
	user, _, _ = strings.Cut(user, ".")
	return user
}
