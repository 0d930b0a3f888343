package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Translator converts source-language text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

var keywordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

const maxKeywords = 10

// ExtractKeywords pulls up to ten distinct lowercase words of three or more
// letters from a target-language text, comma-joined in encounter order.
func ExtractKeywords(text string) string {
	words := keywordPattern.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return strings.Join(keywords, ",")
}

// MyMemoryClient implements Translator against the MyMemory translation API
type MyMemoryClient struct {
	baseURL  string
	langPair string
	client   *http.Client
	logger   *zap.Logger
}

// NewMyMemoryClient creates a new MyMemory API client
func NewMyMemoryClient(baseURL, sourceLang, targetLang string, logger *zap.Logger) *MyMemoryClient {
	return &MyMemoryClient{
		baseURL:  baseURL,
		langPair: sourceLang + "|" + targetLang,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

type myMemoryResponse struct {
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate requests a translation for the given text. Any upstream problem
// surfaces as ErrTranslationFailed; nothing is persisted by this call.
func (c *MyMemoryClient) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", c.langPair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Translation request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Translation service returned non-success status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: upstream status %d", ErrTranslationFailed, resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	if body.ResponseStatus != http.StatusOK {
		details := body.ResponseDetails
		if details == "" {
			details = fmt.Sprintf("response status %d", body.ResponseStatus)
		}
		c.logger.Error("Translation rejected by upstream", zap.String("details", details))
		return "", fmt.Errorf("%w: %s", ErrTranslationFailed, details)
	}

	return body.ResponseData.TranslatedText, nil
}
