package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecom-insights/listing-attributes/internal/extract"
	"github.com/ecom-insights/listing-attributes/internal/llm"
)

// ExtractAttributes implements llm.FieldExtractor over the DeepSeek
// chat/completions endpoint. Network errors, non-2xx statuses and malformed
// responses are retried under the configured policy; exhaustion degrades to
// an empty attribute set with a nil error, so a batch never aborts on one
// bad record.
func (c *Client) ExtractAttributes(ctx context.Context, req llm.ExtractRequest) (extract.AttributeSet, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	sys := llm.BuildSystemPrompt()
	user := llm.BuildUserPrompt(req.Fields)

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"row_id", req.RowID,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(user),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
		},
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	schema := llm.BuildAttributesJSONSchema()

	var (
		out     extract.AttributeSet
		lastRaw []byte
	)
	err := c.cfg.Retry.Do(ctx, func(attempt int) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		raw, status, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
		if err != nil {
			c.log.Warn("llm.extract.http_error",
				"req_id", rid, "attempt", attempt, "status", status, "error", err)
			return err
		}

		content, err := completionContent(raw)
		if err != nil {
			c.log.Warn("llm.extract.decode_error",
				"req_id", rid, "attempt", attempt, "error", err, "raw_bytes", len(raw))
			return err
		}
		lastRaw = []byte(content)

		fields, cleaned, err := parseAttributeDoc(content, schema)
		if err != nil {
			c.log.Warn("llm.extract.parse_error",
				"req_id", rid, "attempt", attempt, "error", err)
			return err
		}
		out = fields
		lastRaw = cleaned
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return extract.AttributeSet{}, lastRaw, ctx.Err()
		}
		c.log.Warn("llm.extract.exhausted",
			"req_id", rid,
			"row_id", req.RowID,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		// Degraded, not failed: the record simply carries no information.
		return extract.AttributeSet{}, lastRaw, nil
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"row_id", req.RowID,
		"attributes", len(out.Values()),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, lastRaw, nil
}

// completionContent pulls the first choice's message content out of a
// chat/completions response.
func completionContent(raw []byte) (string, error) {
	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// parseAttributeDoc turns raw model output into a validated AttributeSet.
// Non-JSON wrappers are stripped by bracket balancing, the document is
// normalized to the canonical ten-key shape, then validated and unmarshaled.
func parseAttributeDoc(content string, schema map[string]any) (extract.AttributeSet, []byte, error) {
	doc := []byte(content)
	if !json.Valid(doc) {
		sub, ok := llm.ExtractJSONObject(content)
		if !ok {
			return extract.AttributeSet{}, nil, fmt.Errorf("no JSON object in response")
		}
		doc = sub
	}

	cleaned, _, err := llm.SanitizeAttributeDoc(doc)
	if err != nil {
		return extract.AttributeSet{}, nil, fmt.Errorf("sanitize response: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return extract.AttributeSet{}, nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var out extract.AttributeSet
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return extract.AttributeSet{}, nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	return out, cleaned, nil
}
