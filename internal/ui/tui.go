// Package ui provides an optional terminal interface for inspecting
// validation and conversion reports.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/convert"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/gtasks"
)

// RunReport starts a TUI showing a validation report and, when present,
// the anomalies of a conversion run.
func RunReport(ctx context.Context, report *gtasks.Report, result *convert.Result) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newReportModel(report, result)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type reportRow struct {
	kind convert.AnomalyKind
	text string
}

type reportModel struct {
	report   *gtasks.Report
	result   *convert.Result
	rows     []reportRow
	filter   convert.AnomalyKind // empty means all
	cursor   int
	height   int
	showHelp bool
}

func newReportModel(report *gtasks.Report, result *convert.Result) *reportModel {
	return &reportModel{
		report: report,
		result: result,
		rows:   buildRows(report, result),
		height: 24,
	}
}

// buildRows flattens findings into display rows. Conversion anomalies
// win over raw report findings when both are available, since they carry
// the applied policy.
func buildRows(report *gtasks.Report, result *convert.Result) []reportRow {
	var rows []reportRow

	if result != nil {
		for _, a := range result.Anomalies {
			text := fmt.Sprintf("[%s] list %s task %s", a.Kind, orDash(a.ListID), orDash(a.TaskID))
			if a.Field != "" {
				text += " field " + a.Field
			}
			text += ": " + a.Detail
			rows = append(rows, reportRow{kind: a.Kind, text: text})
		}
		return rows
	}

	if report == nil {
		return rows
	}
	for _, id := range report.DuplicateIDs {
		rows = append(rows, reportRow{
			kind: convert.AnomalyDuplicateID,
			text: fmt.Sprintf("[%s] id %s occurs more than once", convert.AnomalyDuplicateID, id),
		})
	}
	for _, o := range report.Orphans {
		rows = append(rows, reportRow{
			kind: convert.AnomalyOrphanParent,
			text: fmt.Sprintf("[%s] list %s task %s: parent %s not found", convert.AnomalyOrphanParent, orDash(o.ListID), orDash(o.TaskID), o.Parent),
		})
	}
	for _, id := range report.Cycles {
		rows = append(rows, reportRow{
			kind: convert.AnomalyCycleBroken,
			text: fmt.Sprintf("[%s] task %s sits on a parent-reference cycle", convert.AnomalyCycleBroken, id),
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m *reportModel) Init() tea.Cmd {
	return nil
}

func (m *reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visibleRows())-1 {
				m.cursor++
			}
			return m, nil
		case "0":
			m.filter = ""
			m.cursor = 0
			return m, nil
		case "1":
			m.setFilter(convert.AnomalyDuplicateID)
			return m, nil
		case "2":
			m.setFilter(convert.AnomalyOrphanParent)
			return m, nil
		case "3":
			m.setFilter(convert.AnomalyBadDate)
			return m, nil
		case "4":
			m.setFilter(convert.AnomalyCycleBroken)
			return m, nil
		}
	}
	return m, nil
}

func (m *reportModel) setFilter(kind convert.AnomalyKind) {
	m.filter = kind
	m.cursor = 0
}

func (m *reportModel) visibleRows() []reportRow {
	if m.filter == "" {
		return m.rows
	}
	var filtered []reportRow
	for _, row := range m.rows {
		if row.kind == m.filter {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (m *reportModel) View() string {
	var b strings.Builder

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	writeSummary(&b, m.report, m.result)

	rows := m.visibleRows()
	if len(rows) == 0 {
		b.WriteString("\n  no findings\n")
	} else {
		// Keep the cursor inside the viewport.
		viewport := m.height - 8
		if viewport < 1 {
			viewport = 1
		}
		start := 0
		if m.cursor >= viewport {
			start = m.cursor - viewport + 1
		}
		end := start + viewport
		if end > len(rows) {
			end = len(rows)
		}
		b.WriteString("\n")
		for i := start; i < end; i++ {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			b.WriteString(marker + rows[i].text + "\n")
		}
	}

	if m.filter != "" {
		fmt.Fprintf(&b, "\n  filter: %s\n", m.filter)
	}
	b.WriteString("\n  q quit · h help · 0-4 filter · j/k scroll\n")
	return b.String()
}

func writeSummary(b *strings.Builder, report *gtasks.Report, result *convert.Result) {
	b.WriteString("  gt2sp report\n\n")
	if report != nil {
		fmt.Fprintf(b, "  task lists: %d   tasks: %d   duplicates: %d   orphans: %d   cycles: %d\n",
			report.TaskLists, report.Tasks, len(report.DuplicateIDs), len(report.Orphans), len(report.Cycles))
	}
	if result != nil {
		fmt.Fprintf(b, "  projects: %d   converted: %d   completed: %d   subtasks: %d   skipped: %d   anomalies: %d\n",
			result.Projects, result.Tasks, result.Completed, result.Subtasks, result.Skipped, len(result.Anomalies))
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("  gt2sp report help\n\n")
	b.WriteString("  q, esc, ctrl+c  quit\n")
	b.WriteString("  h, ?            toggle this help\n")
	b.WriteString("  j/k, up/down    move cursor\n")
	b.WriteString("  0               show all findings\n")
	b.WriteString("  1               duplicate identifiers\n")
	b.WriteString("  2               orphaned parents\n")
	b.WriteString("  3               unparseable dates\n")
	b.WriteString("  4               broken cycles\n")
}

// IsTTY returns true if the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
