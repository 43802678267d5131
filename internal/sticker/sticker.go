// Package sticker turns image attachments into outgoing stickers.
package sticker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Label is the metadata tag attached to every generated sticker.
const Label = "Sticker"

// Sender sends sticker-flagged media to a chat.
type Sender interface {
	SendSticker(ctx context.Context, chatJID string, media []byte, label string) error
}

// Converter stages an image to a temporary file and re-submits it to the
// transport as a sticker. Each invocation uses a unique temp path, so
// concurrent conversions from different senders cannot collide.
type Converter struct {
	sender Sender
	dir    string
	logger *zap.Logger
}

func NewConverter(sender Sender, logger *zap.Logger) *Converter {
	return &Converter{sender: sender, dir: os.TempDir(), logger: logger}
}

// Convert sends media to chatJID as a sticker. The staged temp file is
// removed best-effort after the send; a failed cleanup never fails the
// conversion, the sticker is already out.
func (c *Converter) Convert(ctx context.Context, chatJID string, media []byte) error {
	path := filepath.Join(c.dir, "sticker-"+uuid.NewString()+".img")
	if err := os.WriteFile(path, media, 0o600); err != nil {
		return fmt.Errorf("stage sticker image: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			c.logger.Warn("temp sticker cleanup failed",
				zap.String("path", path),
				zap.Error(err))
		}
	}()

	staged, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read staged image: %w", err)
	}

	if err := c.sender.SendSticker(ctx, chatJID, staged, Label); err != nil {
		return fmt.Errorf("send sticker: %w", err)
	}

	c.logger.Info("sticker sent", zap.String("chat", chatJID), zap.Int("bytes", len(staged)))
	return nil
}
