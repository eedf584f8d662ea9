// Package telegram runs the rental consultant chat bot over a Telegram
// webhook.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rental-planner/internal/advisor"
	"rental-planner/internal/app"
	"rental-planner/internal/catalog"
	"rental-planner/internal/config"
	"rental-planner/internal/seating"
)

// sender is the part of tgbotapi.BotAPI the bot uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot wraps the Telegram API and the planner application.
type Bot struct {
	api      sender
	app      *app.App
	adminID  int64
	sessions *SessionStore
	// dispatch runs message handlers; tests replace it to run inline.
	dispatch func(func())
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, a *app.App) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url %s: %w", cfg.TelegramWebhookURL, err)
	}
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return newBot(bot, a, cfg.TelegramAdminID), nil
}

func newBot(api sender, a *app.App, adminID int64) *Bot {
	return &Bot{
		api:      api,
		app:      a,
		adminID:  adminID,
		sessions: NewSessionStore(),
		dispatch: func(f func()) { go f() },
	}
}

// ServeHTTP accepts webhook updates. Messages are processed asynchronously
// so Telegram gets its acknowledgement right away.
func (b *Bot) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("Error parsing update: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)

	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	msg := update.Message
	b.dispatch(func() { b.processMessage(msg) })
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	cmd, args, isCmd := parseCommand(text)
	if !isCmd {
		b.handleAdviceRequest(msg.Chat.ID, text)
		return
	}

	chatID := msg.Chat.ID
	switch cmd {
	case "start", "help":
		b.reply(chatID, helpText+"\n\n"+formatSettings(b.sessions.Get(chatID)))
	case "guests":
		b.handleGuests(chatID, args)
	case "style":
		b.handleStyle(chatID, args)
	case "location":
		b.handleLocation(chatID, args)
	case "plan":
		s := b.sessions.Get(chatID)
		b.reply(chatID, formatPlan(b.app.PlanSeating(s.GuestCount, string(s.Style))))
	case "catalog":
		b.reply(chatID, formatCatalog(catalog.ByCategory(args)))
	case "locations":
		b.reply(chatID, formatLocations(catalog.Locations()))
	case "metrics":
		b.handleMetrics(msg)
	default:
		b.reply(chatID, "Unknown command. Send /help for the list.")
	}
}

// parseCommand splits "/cmd@bot args" into its parts.
func parseCommand(text string) (string, string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, args, _ := strings.Cut(text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	return strings.ToLower(head), strings.TrimSpace(args), true
}

func (b *Bot) handleGuests(chatID int64, args string) {
	n, err := strconv.Atoi(args)
	if err != nil || n < 0 {
		b.reply(chatID, fmt.Sprintf("Usage: /guests N (0-%d)", seating.MaxGuests))
		return
	}
	s := b.sessions.Update(chatID, func(s *Session) { s.GuestCount = seating.ClampGuestCount(n) })
	b.reply(chatID, formatSettings(s))
}

func (b *Bot) handleStyle(chatID int64, args string) {
	style := seating.ParseTableStyle(args)
	if args == "" || !style.Known() {
		var ids []string
		for _, info := range seating.Styles() {
			ids = append(ids, fmt.Sprintf("%s (%s, %s)", info.ID, info.Label, info.Sub))
		}
		b.reply(chatID, esc("Usage: /style ID\n"+strings.Join(ids, "\n")))
		return
	}
	s := b.sessions.Update(chatID, func(s *Session) { s.Style = style })
	b.reply(chatID, formatSettings(s))
}

func (b *Bot) handleLocation(chatID int64, args string) {
	if args == "" {
		s := b.sessions.Update(chatID, func(s *Session) { s.Location = "" })
		b.reply(chatID, formatSettings(s))
		return
	}
	town, ok := catalog.NormalizeLocation(args)
	if !ok {
		b.reply(chatID, "Sorry, we don't deliver there yet.\n\n"+formatLocations(catalog.Locations()))
		return
	}
	s := b.sessions.Update(chatID, func(s *Session) { s.Location = town })
	b.reply(chatID, formatSettings(s))
}

func (b *Bot) handleAdviceRequest(chatID int64, description string) {
	sess, ok := b.sessions.TryBegin(chatID)
	if !ok {
		b.reply(chatID, "⏳ Still working on your last request, please wait.")
		return
	}

	sent, err := b.send(chatID, "🧠 *Consulting our planner...*\n(Putting together your rental advice)")
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		b.sessions.Finish(chatID, nil)
		return
	}

	advice, err := b.app.GenerateAdvice(context.Background(), app.AdviceInput{
		Description: description,
		GuestCount:  sess.GuestCount,
		Location:    sess.Location,
		TableStyle:  string(sess.Style),
		Source:      "telegram",
	})
	if err != nil {
		b.sessions.Finish(chatID, nil)
		b.edit(chatID, sent.MessageID, adviceErrorText(err))
		return
	}

	b.sessions.Finish(chatID, &advice)
	b.edit(chatID, sent.MessageID, formatAdvice(advice))
}

func adviceErrorText(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "⌛ The planner took too long to answer. Please send your description again."
	case errors.Is(err, advisor.ErrInvalidArgument):
		return "Please describe your event so I can help."
	default:
		return "❌ Sorry, I couldn't put together advice right now. Please send your description again."
	}
}

func (b *Bot) handleMetrics(msg *tgbotapi.Message) {
	if msg.From == nil || b.adminID == 0 || msg.From.ID != b.adminID {
		b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}
	report, err := b.app.Usage(7)
	if err != nil {
		log.Printf("Error fetching metrics: %v", err)
		b.reply(msg.Chat.ID, "❌ Error fetching metrics.")
		return
	}
	b.reply(msg.Chat.ID, formatUsage(report))
}

func (b *Bot) send(chatID int64, text string) (tgbotapi.Message, error) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	return b.api.Send(m)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.send(chatID, text); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	e := tgbotapi.NewEditMessageText(chatID, messageID, text)
	e.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(e); err != nil {
		log.Printf("Failed to edit message %d in chat %d: %v", messageID, chatID, err)
	}
}
