package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// Host runs the long-polling loop against the Telegram API and feeds
// command updates to the dispatcher. Each update is handled independently;
// no conversation state is kept between commands.
type Host struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	log        *slog.Logger
}

func NewHost(token string, d *Dispatcher, log *slog.Logger) (*Host, error) {
	if log == nil {
		log = slog.Default()
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	log.Info("Authorized on Telegram", "username", api.Self.UserName)
	return &Host{api: api, dispatcher: d, log: log}, nil
}

// Run polls for updates until ctx is canceled. Per-command failures never
// leave the loop; they are converted to chat replies by the dispatcher.
func (h *Host) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.api.GetUpdatesChan(u)

	h.log.Info("Bot started, polling for updates")
	for {
		select {
		case <-ctx.Done():
			h.api.StopReceivingUpdates()
			h.log.Info("Bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handle(ctx, update)
		}
	}
}

func (h *Host) handle(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	command := update.Message.Command()
	args := update.Message.CommandArguments()
	log := h.log.With("command_id", uuid.NewString(), "command", command,
		"chat_id", update.Message.Chat.ID)

	reply, handled := h.dispatcher.Dispatch(ctx, command, args)
	if !handled {
		log.DebugContext(ctx, "Ignoring unknown command")
		return
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
	if _, err := h.api.Send(msg); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err)
		return
	}
	log.InfoContext(ctx, "Command handled")
}
