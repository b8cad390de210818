package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crossmesh/interop/pkg/cfg"
	"github.com/crossmesh/interop/pkg/types"
)

var mdColumns = []string{"chain", "block", "log", "safety"}

// MarkdownReporter accumulates checked messages and renders them as an
// aligned markdown table on Complete.
type MarkdownReporter struct {
	logger *cfg.Logger
	writer io.Writer
	rows   [][]string
	widths []int
}

func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	logger := cfg.NewLogger()
	logger.Initialize()

	widths := make([]int, len(mdColumns))
	for i, column := range mdColumns {
		widths[i] = len(column)
	}

	return &MarkdownReporter{logger: logger, writer: w, widths: widths}
}

func (m *MarkdownReporter) SetLogger(logger *cfg.Logger) {
	m.logger = logger
}

func (m *MarkdownReporter) Report(msg types.CheckedMessage) error {
	row := []string{
		strconv.FormatUint(msg.Message.ChainID, 10),
		strconv.FormatUint(msg.Message.BlockNumber, 10),
		strconv.FormatUint(uint64(msg.Message.LogIndex), 10),
		msg.Safety.String(),
	}

	for i, cell := range row {
		m.widths[i] = max(m.widths[i], len(cell))
	}
	m.rows = append(m.rows, row)

	m.logger.Debug("recorded message", "message", msg.Message.String(), "safety", msg.Safety.String())
	return nil
}

func (m *MarkdownReporter) Complete() error {
	lines := make([]string, len(m.rows)+2) // +1 for header, +1 for separator
	for i, column := range mdColumns {
		lines[0] += fmt.Sprintf("| %-*s ", m.widths[i], column)
		lines[1] += fmt.Sprintf("| %-s ", strings.Repeat("-", m.widths[i]))
	}
	for r, row := range m.rows {
		for i, cell := range row {
			lines[r+2] += fmt.Sprintf("| %-*s ", m.widths[i], cell)
		}
	}

	table := strings.Join(lines, "|\n") + "|\n"

	_, err := io.WriteString(m.writer, table)
	if err != nil {
		return fmt.Errorf("error writing markdown table: %w", err)
	}

	return nil
}
