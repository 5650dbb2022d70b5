package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gpt "github.com/m-ariany/gpt-chat-client"

	"github.com/prospot/prospot-api/internal/domain"
)

// Completion temperatures. Classification wants reproducible mappings,
// description generation wants some variety.
var (
	classifyTemperature = float32(0.3)
	describeTemperature = float32(0.7)
)

const classifyInstruction = `You map user requests to service categories for a
local directory app in Mendoza, Argentina. The user is looking for a service,
professional, or business. Map the request to exactly one of the provided
categories; if the request is ambiguous, pick the closest one. Respond with a
single JSON object {"targetCategory": string, "reasoning": string,
"recommendedKeywords": [3-5 strings]} and nothing else. reasoning is one short
sentence in Spanish.`

const describeInstruction = `You write marketing copy for a service provider
listing in a local directory app in Mendoza, Argentina. The tone is
professional but trustworthy, the language is Spanish. Respond with a single
JSON object {"description": string, "tags": [5 strings]} and nothing else.
description is at most 250 characters, tags are SEO-optimized for the
specific service.`

// GPTClient implements Service against a chat-completion endpoint.
type GPTClient struct {
	base *gpt.Client
}

// GPTConfig holds endpoint settings for the chat backend.
type GPTConfig struct {
	APIURL string
	APIKey string
	Model  string
}

// NewGPTClient connects the assist service to a chat-completion backend.
func NewGPTClient(cfg GPTConfig) (*GPTClient, error) {
	client, err := gpt.NewClient(gpt.ClientConfig{
		ApiUrl: cfg.APIURL,
		ApiKey: cfg.APIKey,
		Model:  cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("assist: creating gpt client: %w", err)
	}
	return &GPTClient{base: client}, nil
}

// Classify asks the model to map a query onto the category enum.
func (c *GPTClient) Classify(ctx context.Context, query string) (*Classification, error) {
	categories := make([]string, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		categories = append(categories, string(cat))
	}

	client := c.base.CloneWithConfig(gpt.ClientConfig{Temperature: &classifyTemperature})
	client.Instruct(classifyInstruction)

	prompt := fmt.Sprintf("User Search Query: %q.\nCategories: %s.", query, strings.Join(categories, ", "))
	raw, err := client.Prompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assist: %w: %s", ErrUnavailable, err)
	}

	var result Classification
	if err := json.Unmarshal(extractJSON(raw), &result); err != nil {
		return nil, fmt.Errorf("assist: %w: %s", ErrBadCompletion, err)
	}
	if !result.TargetCategory.Valid() {
		return nil, fmt.Errorf("assist: %w: category %q", ErrBadCompletion, result.TargetCategory)
	}
	return &result, nil
}

// Describe asks the model for listing copy.
func (c *GPTClient) Describe(ctx context.Context, name, category, title string) (*Copy, error) {
	client := c.base.CloneWithConfig(gpt.ClientConfig{Temperature: &describeTemperature})
	client.Instruct(describeInstruction)

	prompt := fmt.Sprintf("Business Name: %q\nTitle/Service: %q\nCategory: %q", name, title, category)
	raw, err := client.Prompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assist: %w: %s", ErrUnavailable, err)
	}

	var result Copy
	if err := json.Unmarshal(extractJSON(raw), &result); err != nil {
		return nil, fmt.Errorf("assist: %w: %s", ErrBadCompletion, err)
	}
	if result.Description == "" {
		return nil, fmt.Errorf("assist: %w: empty description", ErrBadCompletion)
	}
	return &result, nil
}

// extractJSON trims chatter around the completion's JSON object. Models
// occasionally wrap the object in code fences or prose.
func extractJSON(raw string) []byte {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return []byte(raw)
	}
	return []byte(raw[start : end+1])
}

var _ Service = (*GPTClient)(nil)
