package botfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client fetches files uploaded through the chat bot. Bot-hosted files are
// only reachable through a short-lived path issued by the bot API, so they
// are streamed through this client on demand instead of being linked by a
// static URL.
type Client struct {
	APIBase    string
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// fileResponse represents the response from the bot getFile endpoint
type fileResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		FileID   string `json:"file_id"`
		FilePath string `json:"file_path"`
	} `json:"result"`
	Description string `json:"description"`
}

// NewClient creates a new bot file client instance
func NewClient(apiBase, token string, logger *zap.Logger) *Client {
	return &Client{
		APIBase:    apiBase,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	}
}

// filePath asks the bot API for the temporary download path of a file id.
func (c *Client) filePath(ctx context.Context, fileID string) (string, error) {
	endpoint := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", c.APIBase, c.Token, url.QueryEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Bot file lookup request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read bot file lookup response", zap.Error(err))
		return "", err
	}

	var fileResp fileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		c.Logger.Error("Failed to parse bot file lookup response",
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return "", err
	}
	if resp.StatusCode != http.StatusOK || !fileResp.OK {
		c.Logger.Error("Bot file lookup failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("description", fileResp.Description))
		return "", fmt.Errorf("error looking up bot file: %d %s", resp.StatusCode, fileResp.Description)
	}

	return fileResp.Result.FilePath, nil
}

// Open streams the content of a bot-hosted file. The caller owns the
// returned reader and must close it. The second return is the content type
// reported by the file host, which may be empty.
func (c *Client) Open(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	path, err := c.filePath(ctx, fileID)
	if err != nil {
		return nil, "", err
	}

	endpoint := fmt.Sprintf("%s/file/bot%s/%s", c.APIBase, c.Token, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Bot file download request failed", zap.Error(err))
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		c.Logger.Error("Bot file download returned error status",
			zap.Int("status_code", resp.StatusCode))
		return nil, "", fmt.Errorf("error downloading bot file: %d", resp.StatusCode)
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}
