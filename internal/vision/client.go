package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	aoption "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
)

// Token ceilings per request shape. Page requests return a single part
// list; consolidation sees every page at once and needs more room.
const (
	imageMaxTokens = 2000
	textMaxTokens  = 3000
)

// Client talks to the vision provider. A request is retried on the next
// catalog candidate only when the provider reports the model itself as
// unknown; every other failure surfaces immediately.
type Client struct {
	api         anthropic.Client
	catalog     *Catalog
	temperature float64
	logger      *slog.Logger
}

func NewClient(cfg common.VisionConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []aoption.RequestOption{aoption.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, aoption.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, aoption.WithRequestTimeout(cfg.Timeout))
	}
	api := anthropic.NewClient(opts...)

	c := &Client{
		api:         api,
		temperature: cfg.Temperature,
		logger:      logger,
	}
	c.catalog = NewCatalog(apiLister{api: api}, logger)
	return c
}

// Analyze sends one image or PDF payload with an instruction and returns
// the model's text output.
func (c *Client) Analyze(ctx context.Context, payload []byte, mediaType, instruction string) (string, error) {
	b64 := base64.StdEncoding.EncodeToString(payload)

	var block anthropic.ContentBlockParamUnion
	if mediaType == "application/pdf" {
		block = anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: b64})
	} else {
		block = anthropic.NewImageBlockBase64(mediaType, b64)
	}
	msg := anthropic.NewUserMessage(block, anthropic.NewTextBlock(instruction))
	return c.complete(ctx, imageMaxTokens, msg)
}

// AnalyzeText sends a text-only instruction, used for consolidating
// per-page results.
func (c *Client) AnalyzeText(ctx context.Context, instruction string) (string, error) {
	msg := anthropic.NewUserMessage(anthropic.NewTextBlock(instruction))
	return c.complete(ctx, textMaxTokens, msg)
}

// Models returns the current ranked candidate list.
func (c *Client) Models(ctx context.Context) []string {
	return c.catalog.Models(ctx)
}

// RefreshModels drops the catalog cache and refetches the listing.
func (c *Client) RefreshModels(ctx context.Context) []string {
	return c.catalog.Refresh(ctx)
}

func (c *Client) complete(ctx context.Context, maxTokens int64, msg anthropic.MessageParam) (string, error) {
	models := c.catalog.Models(ctx)
	if len(models) > constants.MaxModelAttempts {
		models = models[:constants.MaxModelAttempts]
	}

	var lastErr error
	for _, model := range models {
		params := anthropic.MessageNewParams{
			Model:       anthropic.Model(model),
			MaxTokens:   maxTokens,
			Temperature: anthropic.Float(c.temperature),
			Messages:    []anthropic.MessageParam{msg},
		}

		resp, err := c.api.Messages.New(ctx, params)
		if err != nil {
			if isModelNotFound(err) {
				c.logger.Warn("vision.model.unavailable", "model", model, "error", err)
				lastErr = err
				continue
			}
			c.logger.Error("vision.request.failed", "model", model, "error", err)
			return "", common.NewAppError("VISION_REQUEST", err.Error(), common.ErrNetwork)
		}

		text := extractText(resp)
		if text == "" {
			c.logger.Error("vision.response.empty", "model", model)
			return "", common.ErrInvalidResponse
		}
		c.logger.Debug("vision.response.ok", "model", model, "chars", len(text))
		return text, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no candidate models")
	}
	return "", common.NewAppError("VISION_EXHAUSTED", lastErr.Error(), common.ErrNetwork)
}

func extractText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// isModelNotFound reports whether the provider rejected the model id
// itself, the one condition that justifies falling through the catalog.
func isModelNotFound(err error) bool {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == http.StatusNotFound
	}
	return strings.Contains(err.Error(), "not_found_error")
}

type apiLister struct {
	api anthropic.Client
}

func (l apiLister) ListModels(ctx context.Context) ([]ModelInfo, error) {
	page, err := l.api.Models.List(ctx, anthropic.ModelListParams{Limit: anthropic.Int(100)})
	if err != nil {
		return nil, err
	}
	out := make([]ModelInfo, 0, len(page.Data))
	for _, m := range page.Data {
		out = append(out, ModelInfo{ID: string(m.ID), CreatedAt: m.CreatedAt})
	}
	return out, nil
}
