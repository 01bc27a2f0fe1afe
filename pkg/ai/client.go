package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"resume-builder/internal/config"
)

// Client calls an OpenAI-style chat completion endpoint to generate résumé
// summary text. Transient failures and overload responses are retried with
// exponential backoff before the caller ever sees an error; the export path
// never goes through here, it only consumes the final text.
type Client struct {
	http   *resty.Client
	apiURL string
	apiKey string
	model  string
}

func NewClient(cfg *config.AIConfig) *Client {
	http := resty.New().
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(8 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &Client{http: http, apiURL: cfg.APIURL, apiKey: cfg.APIKey, model: cfg.Model}
}

// GenerateSummary asks the model for a short professional summary built from
// the supplied free-text prompt.
func (c *Client) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": c.model,
			"messages": []map[string]string{
				{"role": "system", "content": "You write concise professional resume summaries. Respond with the summary text only, no preamble."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(c.apiURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("summary service returned %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from summary service")
	}
	return text, nil
}
