package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Houeta/shelf-watch/internal/models"
	"github.com/Houeta/shelf-watch/internal/services/loader"
	"gopkg.in/telebot.v4"
)

// defaultReplyTimeout bounds one dashboard load made for a command reply.
const defaultReplyTimeout = 20 * time.Second

const helpText = "Catalog monitor.\n" +
	"/summary - last run overview\n" +
	"/site <key> - counters of one site\n" +
	"/errors - sites that failed"

// startHandler process command /start.
func (b *Bot) startHandler(ctx telebot.Context) error {
	b.log.Info("User started the bot", "username", ctx.Sender().Username)

	if err := ctx.Send(helpText); err != nil {
		return fmt.Errorf("failed to send greeting message: %w", err)
	}

	return nil
}

func (b *Bot) summaryHandler(ctx telebot.Context) error {
	return b.reply(ctx, func(view *models.DashboardView) string {
		return formatSummary(view)
	})
}

func (b *Bot) siteHandler(ctx telebot.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		if err := ctx.Send("Usage: /site <key>"); err != nil {
			return fmt.Errorf("failed to send usage: %w", err)
		}
		return nil
	}

	return b.reply(ctx, func(view *models.DashboardView) string {
		site, ok := view.Site(args[0])
		if !ok {
			return fmt.Sprintf("Unknown site %q. Known: %s", args[0], siteKeys(view))
		}
		return formatSite(site)
	})
}

func (b *Bot) errorsHandler(ctx telebot.Context) error {
	return b.reply(ctx, func(view *models.DashboardView) string {
		return formatErrors(view)
	})
}

// reply loads the dashboard and sends the formatted text, or the single
// failure message when loading fails.
func (b *Bot) reply(ctx telebot.Context, text func(*models.DashboardView) string) error {
	msg := loader.FailureMessage

	timeout := b.replyTimeout
	if timeout <= 0 {
		timeout = defaultReplyTimeout
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	view, err := b.loader.Dashboard(loadCtx)
	if err != nil {
		b.log.Error("failed to load dashboard for bot reply", "error", err)
	} else {
		msg = text(view)
	}

	if err = ctx.Send(msg); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

func formatPills(sb *strings.Builder, pills []models.Pill) {
	for _, p := range pills {
		fmt.Fprintf(sb, "  %s: %d\n", p.Label, p.Value)
	}
}

func formatSummary(view *models.DashboardView) string {
	var sb strings.Builder

	sb.WriteString(view.Meta)
	sb.WriteString("\n")
	formatPills(&sb, view.Overview)

	return strings.TrimRight(sb.String(), "\n")
}

func formatSite(site models.SiteView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s] %s\n", site.Name, site.Badge, site.HeadNote)
	sb.WriteString("Product status:\n")
	formatPills(&sb, site.StatusPills)
	sb.WriteString("Changes:\n")
	formatPills(&sb, site.ChangePills)
	sb.WriteString("Price ranges:\n")
	formatPills(&sb, site.BucketPills)

	return strings.TrimRight(sb.String(), "\n")
}

func formatErrors(view *models.DashboardView) string {
	if len(view.Errors) == 0 {
		return view.ErrorsEmpty
	}

	lines := make([]string, 0, len(view.Errors))
	for _, e := range view.Errors {
		lines = append(lines, fmt.Sprintf("• %s: %s", e.Name, e.Message))
	}

	return strings.Join(lines, "\n")
}

func siteKeys(view *models.DashboardView) string {
	keys := make([]string, 0, len(view.Sites))
	for _, s := range view.Sites {
		keys = append(keys, s.Key)
	}

	return strings.Join(keys, ", ")
}
