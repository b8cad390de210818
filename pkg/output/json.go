package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/crossmesh/interop/pkg/cfg"
	"github.com/crossmesh/interop/pkg/types"
)

// JSONReporter buffers checked messages and writes them as a single JSON
// array on Complete.
type JSONReporter struct {
	logger  *cfg.Logger
	encoder *json.Encoder
	output  []types.CheckedMessage
}

func NewJSONReporter(w io.Writer, indent int) *JSONReporter {
	logger := cfg.NewLogger()
	logger.Initialize()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", indent))

	return &JSONReporter{logger: logger, encoder: encoder}
}

func (j *JSONReporter) SetLogger(logger *cfg.Logger) {
	j.logger = logger
}

func (j *JSONReporter) Report(msg types.CheckedMessage) error {
	j.logger.Debug("recorded message", "message", msg.Message.String(), "safety", msg.Safety.String())
	j.output = append(j.output, msg)
	return nil
}

func (j *JSONReporter) Complete() error {
	return j.encoder.Encode(j.output)
}
