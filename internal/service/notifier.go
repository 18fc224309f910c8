package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/johndn/portfolio/internal/models"
	"github.com/johndn/portfolio/internal/utils"
)

const (
	telegramAttempts   = 3
	telegramRetryDelay = 500 * time.Millisecond
)

// Notifier is told about each newly stored contact message
type Notifier interface {
	NotifyContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// TelegramService relays contact messages to a Telegram chat
type TelegramService struct {
	botToken   string
	chatID     string
	apiURL     string
	client     *http.Client
	retryDelay time.Duration
}

// NewTelegramService creates a Telegram notifier for the public Bot API.
// It returns nil when either credential is empty.
func NewTelegramService(botToken, chatID string) *TelegramService {
	if botToken == "" || chatID == "" {
		return nil
	}
	return NewTelegramServiceWithURL(botToken, chatID, "https://api.telegram.org")
}

// NewTelegramServiceWithURL creates a Telegram notifier against a specific API base URL
func NewTelegramServiceWithURL(botToken, chatID, apiURL string) *TelegramService {
	return &TelegramService{
		botToken:   botToken,
		chatID:     chatID,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		retryDelay: telegramRetryDelay,
	}
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// NotifyContactMessage sends a summary of msg to the configured chat
func (s *TelegramService) NotifyContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	text := fmt.Sprintf(
		"<b>New Contact Form Submission</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Subject:</b> %s\n"+
			"<b>Message:</b>\n%s",
		escapeHTML(msg.Name),
		escapeHTML(msg.Email),
		escapeHTML(msg.Subject),
		escapeHTML(msg.Message),
	)

	jsonData, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= telegramAttempts; attempt++ {
		if attempt > 1 {
			if err := utils.Sleep(ctx, s.retryDelay*time.Duration(attempt-1)); err != nil {
				return fmt.Errorf("telegram notification cancelled: %w", err)
			}
		}

		retry, err := s.send(ctx, jsonData)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return lastErr
}

// send posts one sendMessage request and reports whether a failure is worth retrying
func (s *TelegramService) send(ctx context.Context, body []byte) (bool, error) {
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
		return retry, fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return false, nil
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes HTML special characters for Telegram
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
