package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bits-codec/bits"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	literalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type explorerState int

const (
	stateEnterHex explorerState = iota
	stateBrowseTree
)

// nodeRow is one line of the flattened tree view.
type nodeRow struct {
	packet *bits.Packet
	label  string
	value  string
	expr   string
	depth  int
}

type explorerModel struct {
	err      error
	input    textinput.Model
	rows     []nodeRow
	hexStr   string
	selected int
	state    explorerState
}

type decodedMsg struct {
	err  error
	rows []nodeRow
	hex  string
}

func newExplorerModel() *explorerModel {
	ti := textinput.New()
	ti.Placeholder = "D2FE28"
	ti.Prompt = "hex: "
	ti.Width = 60
	ti.Focus()
	return &explorerModel{
		input: ti,
		state: stateEnterHex,
	}
}

func (m *explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func decodeTransmission(hexStr string) tea.Cmd {
	return func() tea.Msg {
		p, err := bits.DecodeHexValidate(hexStr)
		if err != nil {
			return decodedMsg{err: err}
		}
		return decodedMsg{rows: flattenRows(p, 0), hex: hexStr}
	}
}

// flattenRows builds the pre-order tree listing with per-node evaluation
// and expression, computed once up front.
func flattenRows(p *bits.Packet, depth int) []nodeRow {
	row := nodeRow{packet: p, depth: depth}

	if p.IsLiteral() {
		row.label = fmt.Sprintf("literal v%d", p.Version)
	} else if op, err := p.Op(); err == nil {
		row.label = fmt.Sprintf("%s v%d (%s, %d sub-packets)",
			op.FuncName(), p.Version, p.LengthKind, len(p.Packets))
	}

	if value, err := p.Eval(); err == nil {
		row.value = fmt.Sprintf("%d", value)
	} else {
		row.value = err.Error()
	}
	if expr, err := p.Expression(); err == nil {
		row.expr = expr
	}

	rows := []nodeRow{row}
	for _, sub := range p.Packets {
		rows = append(rows, flattenRows(sub, depth+1)...)
	}
	return rows
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowseTree {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowseTree && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowseTree && m.selected < len(m.rows)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateEnterHex {
				hexStr := strings.TrimSpace(m.input.Value())
				if hexStr != "" {
					return m, decodeTransmission(hexStr)
				}
			}

		case "esc":
			if m.state == stateBrowseTree {
				m.state = stateEnterHex
				m.rows = nil
				m.selected = 0
				m.err = nil
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, tea.Quit
		}

	case decodedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = msg.rows
		m.hexStr = msg.hex
		m.selected = 0
		m.state = stateBrowseTree
		m.input.Blur()
	}

	if m.state == stateEnterHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BITS Explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEnterHex:
		b.WriteString("Enter a hexadecimal transmission:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter decode • esc quit"))

	case stateBrowseTree:
		b.WriteString(m.hexShort())
		b.WriteString("\n\n")
		for i, row := range m.rows {
			line := strings.Repeat("  ", row.depth) + m.formatRow(row)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}

		sel := m.rows[m.selected]
		b.WriteString("\n")
		b.WriteString("value: ")
		b.WriteString(resultStyle.Render(sel.value))
		if sel.expr != "" && sel.packet.IsOperator() {
			b.WriteString("\nexpr:  ")
			b.WriteString(resultStyle.Render(truncate(sel.expr, 100)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ select • esc new transmission • q quit"))
	}

	return b.String()
}

func (m *explorerModel) formatRow(row nodeRow) string {
	if row.packet.IsLiteral() {
		return literalStyle.Render(row.label) + " = " + row.value
	}
	return opStyle.Render(row.label)
}

func (m *explorerModel) hexShort() string {
	return truncate(m.hexStr, 70)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func runInteractive() error {
	p := tea.NewProgram(newExplorerModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
