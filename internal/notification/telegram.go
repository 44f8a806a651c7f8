package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the studio's admin channel.
// Customer identities are opaque external ids here, so there is no
// per-customer chat; the channel is where the front desk watches the day.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, svc *domain.Service) {
	text := fmt.Sprintf(
		"*New booking*\n\nService: %s\nCustomer: %s\nGroup size: %d\nTotal: %.2f",
		svc.Name, b.CustomerID, b.GroupSize, b.TotalPrice,
	)
	if b.DepositRequired {
		text += "\n_Deposit pending_"
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, svc *domain.Service) {
	text := fmt.Sprintf(
		"*Deposit received*\n\nService: %s\nCustomer: %s\nGroup size: %d",
		svc.Name, b.CustomerID, b.GroupSize,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, svc *domain.Service) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nService: %s\nCustomer: %s\nSeats freed: %d",
		svc.Name, b.CustomerID, b.GroupSize,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyWaitlistPromoted(ctx context.Context, e *domain.WaitlistEntry, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Waitlist promotion*\n\nCustomer: %s\nPreferred date: %s\nGroup size: %d",
		e.CustomerID, e.PreferredDate.Format("02.01.2006"), e.GroupSize,
	)
	if b != nil && b.DepositRequired {
		text += "\n_Deposit pending_"
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
