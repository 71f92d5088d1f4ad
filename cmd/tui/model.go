package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"

	"github.com/mgorski/filecat/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Margin(1, 0, 0, 0)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Margin(1, 0, 0, 0)
)

type view int

const (
	viewFiles view = iota
	viewImages
	viewDocuments
	viewExtensions
	viewCount
)

var viewTitles = map[view]string{
	viewFiles:      "Top files by size",
	viewImages:     "Top images by area",
	viewDocuments:  "Top documents by pages",
	viewExtensions: "Extensions by count",
}

type model struct {
	table    table.Model
	overview *models.Overview
	view     view
}

func newModel(overview *models.Overview) model {
	m := model{overview: overview}
	m.table = m.buildTable()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	nextView := key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next report"),
	)
	prevView := key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "previous report"),
	)
	quit := key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quit):
			return m, tea.Quit
		case key.Matches(msg, nextView):
			m.view = (m.view + 1) % viewCount
			m.table = m.buildTable()
			return m, nil
		case key.Matches(msg, prevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.table = m.buildTable()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width - 4)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	title := titleStyle.Render(fmt.Sprintf("%s | total %s",
		viewTitles[m.view], units.BytesSize(float64(m.overview.TotalSizeBytes))))
	help := helpStyle.Render("tab: switch report • q: quit")
	return title + "\n" + baseStyle.Render(m.table.View()) + "\n" + help
}

func (m model) buildTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case viewFiles:
		columns = []table.Column{
			{Title: "Path", Width: 60},
			{Title: "Ext", Width: 6},
			{Title: "Size", Width: 12},
		}
		for _, f := range m.overview.TopFiles {
			rows = append(rows, table.Row{f.Path, f.Ext, units.BytesSize(float64(f.Size))})
		}
	case viewImages:
		columns = []table.Column{
			{Title: "Path", Width: 52},
			{Title: "Dimensions", Width: 12},
			{Title: "Area", Width: 14},
		}
		for _, row := range m.overview.TopImages {
			dims := fmt.Sprintf("%dx%d", row.Image.Width, row.Image.Height)
			rows = append(rows, table.Row{row.File.Path, dims, strconv.FormatInt(row.Area, 10)})
		}
	case viewDocuments:
		columns = []table.Column{
			{Title: "Path", Width: 60},
			{Title: "Pages", Width: 8},
			{Title: "Size", Width: 12},
		}
		for _, row := range m.overview.TopDocuments {
			rows = append(rows, table.Row{
				row.File.Path,
				strconv.FormatInt(row.Document.Pages, 10),
				units.BytesSize(float64(row.File.Size)),
			})
		}
	case viewExtensions:
		columns = []table.Column{
			{Title: "Extension", Width: 20},
			{Title: "Count", Width: 10},
		}
		for _, ext := range m.overview.Extensions {
			name := ext.Ext
			if name == "" {
				name = "(none)"
			}
			rows = append(rows, table.Row{name, strconv.FormatInt(ext.Count, 10)})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}
