package bot

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/shelf-watch/internal/services/loader"
	"gopkg.in/telebot.v4"
)

// Bot contains the bot API instance and the dashboard it reports on.
type Bot struct {
	bot    API
	log    *slog.Logger
	loader loader.Interface

	replyTimeout time.Duration
}

func NewBot(log *slog.Logger, token string, poller time.Duration, ldr loader.Interface) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	botInstance := &Bot{bot: bot, log: log, loader: ldr, replyTimeout: defaultReplyTimeout}

	botInstance.registerRoutes()

	return botInstance, nil
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/summary", b.summaryHandler)
	b.bot.Handle("/site", b.siteHandler)
	b.bot.Handle("/errors", b.errorsHandler)
}
