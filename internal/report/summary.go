package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/hailam/fillgen/internal/ports"
	"github.com/hailam/fillgen/internal/utils"
)

// Summary describes a generated file.
type Summary struct {
	Path        string  `json:"path" yaml:"path"`
	Format      string  `json:"format" yaml:"format"`
	TargetBytes int64   `json:"target_bytes" yaml:"target_bytes"`
	ActualBytes int64   `json:"actual_bytes" yaml:"actual_bytes"`
	ActualKiB   float64 `json:"actual_kib" yaml:"actual_kib"`
}

// NewSummary builds the summary of f.
func NewSummary(f *ports.GeneratedFile) Summary {
	return Summary{
		Path:        f.Path,
		Format:      f.Format.Extension(),
		TargetBytes: f.Target,
		ActualBytes: f.Size,
		ActualKiB:   math.Round(f.KiB()*100) / 100,
	}
}

// Outputter prints summaries in one of the text, table, json or yaml formats.
type Outputter struct {
	format string
	writer io.Writer
}

// NewOutputter creates an Outputter writing to w.
func NewOutputter(format string, w io.Writer) *Outputter {
	return &Outputter{format: format, writer: w}
}

// Print outputs s in the configured format.
func (o *Outputter) Print(s Summary) error {
	switch o.format {
	case "text", "":
		return o.printText(s)
	case "table":
		return o.printTable(s)
	case "json":
		return o.printJSON(s)
	case "yaml":
		return o.printYAML(s)
	default:
		return fmt.Errorf("unknown output format: %s", o.format)
	}
}

func (o *Outputter) printText(s Summary) error {
	_, err := fmt.Fprintf(o.writer, "File '%s' created. Target size: %d bytes, actual size: %d bytes (%s KiB)\n",
		s.Path, s.TargetBytes, s.ActualBytes, utils.FormatKiB(s.ActualBytes))
	return err
}

func (o *Outputter) printTable(s Summary) error {
	table := tablewriter.NewWriter(o.writer)
	table.Header("PATH", "FORMAT", "TARGET BYTES", "ACTUAL BYTES", "ACTUAL KIB")
	if err := table.Append([]string{
		s.Path,
		s.Format,
		strconv.FormatInt(s.TargetBytes, 10),
		strconv.FormatInt(s.ActualBytes, 10),
		utils.FormatKiB(s.ActualBytes),
	}); err != nil {
		return err
	}
	return table.Render()
}

func (o *Outputter) printJSON(s Summary) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

func (o *Outputter) printYAML(s Summary) error {
	encoder := yaml.NewEncoder(o.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(s)
}
