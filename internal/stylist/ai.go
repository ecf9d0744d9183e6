package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vybe/internal/metrics"
	"vybe/internal/models"
	"vybe/pkg/circuitbreaker"
)

const systemPrompt = "You are a professional fashion stylist. Generate complete outfit recommendations based on the provided product."

// AIConfig configures the chat-completions backed stylist.
type AIConfig struct {
	APIKey          string
	Endpoint        string
	Model           string
	Timeout         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// AIStylist asks a text-generation service for an outfit and falls back to
// the template for the requested style when anything goes wrong.
type AIStylist struct {
	cfg      AIConfig
	client   *http.Client
	breaker  *circuitbreaker.Breaker
	validate *validator.Validate
	tracer   trace.Tracer
}

// NewAIStylist creates an AIStylist. cfg.Timeout bounds every outbound call.
func NewAIStylist(cfg AIConfig) *AIStylist {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	breaker := circuitbreaker.New(cfg.BreakerFailures, cfg.BreakerCooldown)
	breaker.OnStateChange(func(from, to circuitbreaker.State) {
		slog.Warn("stylist circuit breaker changed state",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		metrics.SetBreakerOpen(to != circuitbreaker.StateClosed)
	})

	return &AIStylist{
		cfg: cfg,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker:  breaker,
		validate: validator.New(),
		tracer:   otel.Tracer("vybe/stylist"),
	}
}

// Generate implements Stylist.
func (s *AIStylist) Generate(ctx context.Context, product models.Product, style models.Style) GeneratedOutfit {
	style = models.NormalizeStyle(string(style))
	ctx, span := s.tracer.Start(ctx, "stylist.Generate", trace.WithAttributes(
		attribute.String("outfit.style", string(style)),
		attribute.String("product.id", product.ID),
	))
	defer span.End()

	if !s.breaker.Allow() {
		span.SetAttributes(attribute.String("stylist.source", metrics.SourceFallback))
		metrics.ObserveGeneration(metrics.SourceFallback, string(style))
		return Template(product, style)
	}

	start := time.Now()
	content, err := s.complete(ctx, buildPrompt(product, style))
	if err != nil {
		s.breaker.Failure()
		metrics.ObserveStylistCall("error", time.Since(start))
		return s.fallback(span, product, style, err)
	}
	s.breaker.Success()
	metrics.ObserveStylistCall("ok", time.Since(start))

	outfit, err := parseReply(s.validate, content, product, style)
	if err != nil {
		return s.fallback(span, product, style, err)
	}

	span.SetAttributes(attribute.String("stylist.source", metrics.SourceAI))
	metrics.ObserveGeneration(metrics.SourceAI, string(style))
	return outfit
}

func (s *AIStylist) fallback(span trace.Span, product models.Product, style models.Style, err error) GeneratedOutfit {
	slog.Warn("AI outfit generation failed, using template",
		slog.String("product_id", product.ID),
		slog.String("style", string(style)),
		slog.String("error", err.Error()),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, "fell back to template")
	span.SetAttributes(attribute.String("stylist.source", metrics.SourceFallback))
	metrics.ObserveGeneration(metrics.SourceFallback, string(style))
	return Template(product, style)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends one chat-completions request and returns the reply text.
func (s *AIStylist) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat request returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("chat response has no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
