package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/logger"
)

// promptTimeout bounds a single prompt fetch.
const promptTimeout = 5 * time.Second

// PromptLoaderConfig names a managed prompt and the file it is cached in.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	SavePath    string
}

func (c PromptLoaderConfig) remote() bool {
	return c.PromptName != "" && c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// ErrNoPrompt is returned when neither Langfuse nor the cache file yields a prompt.
var ErrNoPrompt = errors.New("no prompt available")

// LoadPrompt returns the system prompt for caffeine insights. A prompt fetched from
// Langfuse is written to SavePath; when the fetch fails or Langfuse is not
// configured, SavePath is read instead.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	log := logger.Named("langfuse")

	if cfg.remote() {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := cachePrompt(cfg.SavePath, prompt); err != nil {
				log.Warn().Err(err).Str("path", cfg.SavePath).Msg("failed to cache prompt")
			}
			log.Info().Str("prompt", cfg.PromptName).Str("label", cfg.PromptLabel).Msg("loaded prompt from langfuse")
			return prompt, nil
		}
		log.Warn().Err(err).Str("prompt", cfg.PromptName).Msg("prompt fetch failed, reading cache")
	}

	return readCachedPrompt(cfg.SavePath)
}

// promptResponse is the part of /api/public/v2/prompts/{name} the loader needs.
type promptResponse struct {
	Type   string          `json:"type"`
	Prompt json.RawMessage `json:"prompt"`
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func promptURL(cfg PromptLoaderConfig) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		u.RawQuery = url.Values{"label": {cfg.PromptLabel}}.Encode()
	}
	return u.String(), nil
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	endpoint, err := promptURL(cfg)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, promptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("prompt request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var body promptResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	prompt, err := body.text()
	if err != nil {
		return "", err
	}
	if prompt = strings.TrimSpace(prompt); prompt == "" {
		return "", fmt.Errorf("prompt %q is empty", cfg.PromptName)
	}
	return prompt, nil
}

// text renders a text prompt as is and a chat prompt as "ROLE: content" blocks.
func (p promptResponse) text() (string, error) {
	switch p.Type {
	case "", "text":
		var s string
		if err := json.Unmarshal(p.Prompt, &s); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return s, nil
	case "chat":
		var msgs []chatMessage
		if err := json.Unmarshal(p.Prompt, &msgs); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		blocks := make([]string, 0, len(msgs))
		for _, m := range msgs {
			if b := m.block(); b != "" {
				blocks = append(blocks, b)
			}
		}
		return strings.Join(blocks, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", p.Type)
	}
}

func (m chatMessage) block() string {
	content := m.Content
	if m.Type == "placeholder" {
		if m.Name == "" {
			return ""
		}
		content = "{{" + m.Name + "}}"
	}
	if content == "" {
		return ""
	}
	role := m.Role
	if role == "" {
		role = "message"
	}
	return strings.ToUpper(role) + ": " + content
}

func readCachedPrompt(path string) (string, error) {
	if path == "" {
		return "", ErrNoPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cached prompt: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", ErrNoPrompt
	}
	return prompt, nil
}

func cachePrompt(path, prompt string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
