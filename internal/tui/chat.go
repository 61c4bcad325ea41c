package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// returns a new chat screen
func NewChatModel() *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "hỏi về sản phẩm, giá, đặt hàng..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGray)

	return &ChatModel{
		input:      ti,
		spinner:    sp,
		transcript: []MessageModel{},
		client:     NewChatClient(),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.client.StartSessionCmd())
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.transcript = append(m.transcript, MessageModel{Role: "user", Content: query})
			m.refreshViewport()

			return m, tea.Batch(m.spinner.Tick, m.client.SendCmd(query))

		case "ctrl+l":
			m.transcript = []MessageModel{}
			m.input.SetValue("")
			m.isFetching = false
			m.refreshViewport()

			// a fresh session drops the server-side history too
			return m, m.client.StartSessionCmd()
		}

	case SessionReadyMsg:
		m.sessionErr = nil
		return m, nil

	case ChatResponseMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, MessageModel{Role: "assistant", Content: msg.output})
		m.refreshViewport()
		m.input.Focus()

		return m, nil

	case ChatErrorMsg:
		m.isFetching = false

		if msg.userQuery == "" {
			m.sessionErr = msg.err
		} else {
			m.transcript = append(m.transcript, MessageModel{
				Role:    "assistant",
				Content: fmt.Sprintf("Error: %v", msg.err),
			})
		}

		m.refreshViewport()
		m.input.Focus()

		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10

		viewportHeight := max(msg.Height-8, 3)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(msg.Width-8, 20)),
		)
		if err == nil {
			m.glamourRenderer = renderer
		}

		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) View() string {
	if !m.ready {
		return "\n  loading..."
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Render("TECHWORLD ASSISTANT")

	help := lipgloss.NewStyle().
		Foreground(colorGray).
		Render("[Enter: Send] [Ctrl+L: New Session] [Ctrl+C: Back]")

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(0, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	)

	b.WriteString(headerLine)
	b.WriteString("\n\n")

	transcriptBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Width(m.width - 4).
		Padding(0, 1).
		Render(m.viewport.View())

	b.WriteString(transcriptBox)
	b.WriteString("\n")

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Width(m.width - 4).
		Padding(0, 1).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")

	switch {
	case m.sessionErr != nil:
		b.WriteString(infoStyle.Render(fmt.Sprintf("session error: %v (Ctrl+L to retry)", m.sessionErr)))
	case m.isFetching:
		b.WriteString(infoStyle.Render(m.spinner.View() + " đang trả lời..."))
	}

	return b.String()
}

// re-renders the transcript into the viewport
func (m *ChatModel) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderTranscript() string {
	if len(m.transcript) == 0 {
		return infoStyle.Render("xin chào! hãy đặt câu hỏi về sản phẩm của TechWorld.")
	}

	var b strings.Builder

	for _, msg := range m.transcript {
		if msg.Role == "user" {
			b.WriteString(userLabelStyle.Render("Bạn"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
			b.WriteString("\n\n")

			continue
		}

		b.WriteString(assistantLabelStyle.Render("TechWorld"))
		b.WriteString("\n")
		b.WriteString(m.renderMarkdown(msg.Content))
		b.WriteString("\n")
	}

	return b.String()
}

// renders assistant markdown, falling back to plain text
func (m *ChatModel) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content + "\n"
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		return content + "\n"
	}

	return rendered
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
