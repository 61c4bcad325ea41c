package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// manages HTTP requests to the chat REST API
type ChatClient struct {
	endpoint   string
	token      string
	sessionID  string
	httpClient *http.Client
}

// creates a new chat REST client
func NewChatClient() *ChatClient {
	endpoint := os.Getenv("TECHWORLD_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ChatClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// requests a fresh session token from the server
func (c *ChatClient) StartSession(ctx context.Context) (*SessionReadyMsg, error) {
	url := fmt.Sprintf("%s/api/v1/chat/session", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result sessionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.token = result.Token
	c.sessionID = result.SessionID

	return &SessionReadyMsg{token: result.Token, sessionID: result.SessionID}, nil
}

// sends one conversation turn to the chat endpoint
func (c *ChatClient) Send(ctx context.Context, userQuery string) (*ChatResponseMsg, error) {
	if c.token == "" {
		return nil, fmt.Errorf("no active session")
	}

	payload := chatRequest{
		ChatInput: userQuery,
		SessionID: c.sessionID,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/chat", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ChatResponseMsg{userQuery: userQuery, output: result.Output}, nil
}

func (c *ChatClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// returns a tea.Cmd that requests a session
func (c *ChatClient) StartSessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sessionRequestTimeout)
		defer cancel()

		resp, err := c.StartSession(ctx)
		if err != nil {
			return ChatErrorMsg{err: err}
		}

		return *resp
	}
}

// returns a tea.Cmd that sends a chat turn
func (c *ChatClient) SendCmd(userQuery string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		resp, err := c.Send(ctx, userQuery)
		if err != nil {
			return ChatErrorMsg{userQuery: userQuery, err: err}
		}

		return *resp
	}
}

// REST API request/response types

type chatRequest struct {
	ChatInput string `json:"chat_input"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Output string `json:"output"`
}

type sessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
