package bot

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// maybeGreet runs after every handled message, including ones that already
// produced a reply. If the message was stamped on a different local calendar
// day than today, the bot welcomes the user back.
func (b *Bot) maybeGreet(ctx context.Context, msg *Message) {
	if sameCalendarDay(b.now(), msg.Timestamp) {
		return
	}
	b.logger.Debug("welcoming user back",
		zap.String("sender", msg.Sender),
		zap.Time("last_seen", msg.Timestamp))
	b.reply(ctx, msg, replyWelcomeBack)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
