package alerts

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nfl-odds-bot/internal/api"
)

// MaxContentLength is Discord's limit for a message body. Messages are not
// split; a longer post is rejected by Discord and surfaces as a NotifyError.
const MaxContentLength = 2000

// NotifyError reports a failed Discord post: the webhook could not be reached,
// or answered with anything other than 204 No Content.
type NotifyError struct {
	StatusCode int    // 0 when no response was received
	Body       string // response body, if any
	Err        error
}

func (e *NotifyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("discord post failed (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("discord post failed: %v", e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

type webhookMessage struct {
	Content string `json:"content"`
}

// CodeBlock wraps msg in a Discord fenced code block.
func CodeBlock(msg string) string {
	return "```" + msg + "```"
}

// Notifier posts messages to a Discord webhook
type Notifier struct {
	webhookURL string
	client     *api.Client
	logger     *zap.Logger
}

// NewNotifier creates a new notifier
func NewNotifier(webhookURL string, client *api.Client, logger *zap.Logger) *Notifier {
	if client == nil {
		client = api.NewClient(api.DefaultTimeout)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		webhookURL: webhookURL,
		client:     client,
		logger:     logger,
	}
}

// Notify posts msg as a single code block. Only 204 No Content counts as
// delivered.
func (n *Notifier) Notify(ctx context.Context, msg string) error {
	content := CodeBlock(msg)
	if len(content) > MaxContentLength {
		n.logger.Warn("message exceeds discord content limit",
			zap.Int("length", len(content)), zap.Int("limit", MaxContentLength))
	}

	resp, err := n.client.PostJSON(ctx, n.webhookURL, webhookMessage{Content: content})
	if err != nil {
		n.logger.Error("discord post failed", zap.Error(err))
		return &NotifyError{Err: err}
	}

	if resp.StatusCode != http.StatusNoContent {
		n.logger.Error("discord rejected message",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body),
		)
		return &NotifyError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	n.logger.Info("message sent", zap.Int("length", len(content)))
	return nil
}
