package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	width   int
	height  int
	err     error
	welcome *Welcome
	chat    *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the chat state
type EnterChatMsg struct{}

// a single turn in the conversation transcript
type MessageModel struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// interactive chat interface
type ChatModel struct {
	input              textinput.Model
	viewport           viewport.Model
	spinner            spinner.Model
	width              int
	height             int
	transcript         []MessageModel
	isFetching         bool
	ready              bool
	shouldScrollBottom bool
	glamourRenderer    *glamour.TermRenderer
	client             *ChatClient
	sessionErr         error
}

// sent when a chat session is issued
type SessionReadyMsg struct {
	token     string
	sessionID string
}

// sent when the assistant answers
type ChatResponseMsg struct {
	userQuery string
	output    string
}

// sent when a chat request fails
type ChatErrorMsg struct {
	userQuery string
	err       error
}

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
	Available   bool
}

// sent when the server starts
type ServerStartedMsg struct{}

// sent when the ingester completes
type IngesterCompleteMsg struct{}
