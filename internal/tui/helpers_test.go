package tui

import tea "github.com/charmbracelet/bubbletea"

func teaUp() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyUp} }
func backspace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyBackspace} }
