package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/blaisecz/caffeine-planner/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are a non-medical caffeine planning assistant.

You receive a list of caffeine doses, a pharmacokinetic sensitivity profile (half-life, sleep decay, crash threshold), the model's current level, crash prediction and sleep score, and optionally a set of intake constraints with an optimized schedule. Base your conclusions only on the provided data.

Your goals:
- Explain the current caffeine level and when it is predicted to drop below the crash threshold.
- Explain how the remaining caffeine at bedtime affects the predicted sleep score.
- If an optimized plan is present, explain which doses were added and why they raise alertness within the limits.
- Give practical timing suggestions that respect the constraints.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT recommend exceeding the given daily limit or dosing after the cutoff.
- If data is limited, say that explicitly.
- Be concise and concrete; use clock times from the data.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on the current level, crash time and sleep impact.",
  "observations": ["3-6 items about the timeline and the plan."],
  "guidance": ["3-5 concrete timing suggestions."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's caffeine intake.

- "doses" are the intakes (mg, timestamp).
- "sensitivity" holds half_life_hours, sleep_decay_mg and crash_threshold_mg.
- "timeline" holds the level now, the predicted crash time and the sleep score.
- "constraints" and "plan", when present, describe the limits and the optimized schedule.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating caffeine insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.CaffeineInsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
	requestOpts  []option.RequestOption
}

// Option customizes an OpenAIClient.
type Option func(*OpenAIClient)

// WithSystemPrompt replaces the built-in system prompt. Blank prompts are ignored.
func WithSystemPrompt(prompt string) Option {
	return func(c *OpenAIClient) {
		if strings.TrimSpace(prompt) != "" {
			c.systemPrompt = prompt
		}
	}
}

// WithRequestOptions passes options to the underlying OpenAI client, e.g. a base URL.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(c *OpenAIClient) {
		c.requestOpts = append(c.requestOpts, opts...)
	}
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...Option) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}

	c := &OpenAIClient{
		model:        model,
		systemPrompt: DefaultSystemPrompt,
		requestOpts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = openai.NewClient(c.requestOpts...)
	return c
}

// SystemPrompt returns the prompt sent as the system message.
func (c *OpenAIClient) SystemPrompt() string {
	if c == nil {
		return ""
	}
	return c.systemPrompt
}

// GenerateInsights calls OpenAI to summarize the caffeine context.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.CaffeineInsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseOutput(resp.Choices[0].Message.Content)
}

// ParseOutput decodes the model's JSON answer, tolerating a fenced code block.
func ParseOutput(content string) (*domain.LLMInsightsOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
