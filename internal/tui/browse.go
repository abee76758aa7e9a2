// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive browser over stored encrypted thoughts.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/llm-secrets/internal/service"
	"github.com/MKhiriev/llm-secrets/models"
)

type recordsLoadedMsg struct {
	records []models.StoredRecord
	err     error
}

type revealedMsg struct {
	id   string
	text string
	err  error
}

type copiedMsg struct {
	err error
}

type browseModel struct {
	ctx      context.Context
	thoughts service.ThoughtReader

	records   []models.StoredRecord
	idx       int
	loading   bool
	revealing bool
	detail    bool
	plaintext string
	status    string
	errMsg    string
	spinner   spinner.Model
}

func newBrowseModel(ctx context.Context, thoughts service.ThoughtReader) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browseModel{ctx: ctx, thoughts: thoughts, spinner: s, loading: true}
}

func (m browseModel) current() (models.StoredRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.StoredRecord{}, false
	}
	return m.records[m.idx], true
}

func (m browseModel) cmdLoadRecords() tea.Cmd {
	ctx, thoughts := m.ctx, m.thoughts
	return func() tea.Msg {
		records, err := thoughts.List(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m browseModel) cmdReveal(id string) tea.Cmd {
	ctx, thoughts := m.ctx, m.thoughts
	return func() tea.Msg {
		text, err := thoughts.Reveal(ctx, id)
		return revealedMsg{id: id, text: text, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadRecords(), m.spinner.Tick)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		if m.idx >= len(m.records) {
			m.idx = len(m.records) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case revealedMsg:
		m.revealing = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.detail = true
		m.plaintext = msg.text
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.detail {
			m.detail = false
			m.plaintext = ""
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if !m.detail && m.idx > 0 {
			m.idx--
		}
		return m, nil

	case "down", "j":
		if !m.detail && m.idx < len(m.records)-1 {
			m.idx++
		}
		return m, nil

	case "r":
		if !m.detail {
			m.loading = true
			return m, m.cmdLoadRecords()
		}
		return m, nil

	case "c":
		if m.detail && m.plaintext != "" {
			return m, cmdCopy(m.plaintext)
		}
		return m, nil

	case "enter":
		if m.detail || m.revealing {
			return m, nil
		}
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		m.revealing = true
		return m, m.cmdReveal(record.ID)
	}

	return m, nil
}

func (m browseModel) View() string {
	header := titleStyle.Render("llmsecrets")
	if m.revealing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.detail:
		record, _ := m.current()
		out += titleStyle.Render(record.ID) + "\n"
		out += detailStyle.Render(m.plaintext) + "\n"
		out += "\n" + helpStyle.Render("c copy  esc back  q quit")

	case m.loading:
		out += m.spinner.View() + " loading...\n"

	case len(m.records) == 0:
		out += "no encrypted thoughts stored\n"
		out += "\n" + helpStyle.Render("r refresh  q quit")

	default:
		for i, record := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s  %d bytes\n",
				cursor, record.ID, record.CreatedAt.Format("2006-01-02 15:04"), record.SizeBytes)
		}
		out += "\n" + helpStyle.Render("enter reveal  r refresh  q quit")
	}

	if m.status != "" {
		out += "\n" + m.status
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(strings.TrimSpace(m.errMsg))
	}

	return appStyle.Render(out)
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, thoughts service.ThoughtReader) error {
	_, err := tea.NewProgram(newBrowseModel(ctx, thoughts), tea.WithAltScreen()).Run()
	return err
}
