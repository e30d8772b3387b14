package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrConfigMissing = errors.New("upstream config missing")
	ErrRequestFailed = errors.New("upstream request failed")
)

const defaultTimeout = 10 * time.Second

// Config 上游商店 API 配置
type Config struct {
	URL       string `json:"url"`        // 商店接口地址
	APIKey    string `json:"api_key"`    // Authorization 凭证
	TimeoutMS int    `json:"timeout_ms"` // 请求超时（毫秒）
}

// Client 上游商店 API 客户端
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient 创建上游客户端
func NewClient(cfg Config) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch 拉取商店原始响应体。单次请求，不重试；
// 配置缺失、传输失败或非 2xx 状态均返回错误，由调用方决定兜底。
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	url := strings.TrimSpace(c.cfg.URL)
	apiKey := strings.TrimSpace(c.cfg.APIKey)
	if url == "" || apiKey == "" {
		return nil, ErrConfigMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}
	return body, nil
}
