package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/arthur-debert/surfreset/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer writes operation results for people or for scripts
type Renderer struct {
	w      io.Writer
	format Format
	lg     *lipgloss.Renderer
}

// NewRenderer creates a Renderer. FormatAuto must be resolved by the
// caller with DetectFormat.
func NewRenderer(w io.Writer, format Format) *Renderer {
	log := logging.GetLogger("output")

	lg := lipgloss.NewRenderer(w)
	if format == FormatTerminal {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
	log.Debug().Str("format", format.String()).Msg("Renderer created")

	return &Renderer{w: w, format: format, lg: lg}
}

// Render writes result under a title
func (r *Renderer) Render(title string, result types.Result) error {
	if r.format == FormatJSON {
		return r.renderJSON(result)
	}

	var b strings.Builder
	b.WriteString(r.banner(title))
	b.WriteString("\n\n")

	for _, step := range result.Steps {
		b.WriteString(r.step(step))
		b.WriteString("\n")
	}
	if len(result.Steps) > 0 {
		b.WriteString("\n")
	}

	if len(result.Paths) > 0 {
		for _, p := range result.Paths {
			mark := "missing"
			status := types.StepSkipped
			if p.Exists {
				mark, status = "found", types.StepDone
			}
			fmt.Fprintf(&b, "  %s %s %s\n",
				r.styled(status, fmt.Sprintf("%-8s", mark)),
				r.label(fmt.Sprintf("%-18s", p.Name)),
				p.Path)
		}
		b.WriteString("\n")
	}

	if ids := result.Identifiers; ids != nil {
		rows := [][2]string{
			{"telemetry.machineId", ids.MachineID},
			{"telemetry.sqmId", ids.SqmID},
			{"telemetry.devDeviceId", ids.DevDeviceID},
			{"machineid", ids.MachineIDFile},
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "  %s %s\n", r.label(fmt.Sprintf("%-22s", row[0])), r.value(row[1]))
		}
		b.WriteString("\n")
	}

	b.WriteString(r.summary(result))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) renderJSON(result types.Result) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (r *Renderer) banner(title string) string {
	if r.format != FormatTerminal {
		return "== " + title + " =="
	}
	return bannerStyle.Renderer(r.lg).Render(title)
}

func (r *Renderer) step(s types.Step) string {
	line := fmt.Sprintf("  %s %-18s %s", r.styled(s.Status, fmt.Sprintf(" %-7s ", s.Status)), s.Name, s.Message)
	if s.Duration >= 100*time.Millisecond {
		line += r.label(fmt.Sprintf(" (%s)", s.Duration.Round(100*time.Millisecond)))
	}
	return strings.TrimRight(line, " ")
}

func (r *Renderer) summary(result types.Result) string {
	var prefix pterm.Prefix
	switch {
	case !result.Success:
		prefix = pterm.Error.Prefix
	case result.Outcome == types.OutcomeNoWindow || result.NeedsBrowserLogin:
		prefix = pterm.Warning.Prefix
	default:
		prefix = pterm.Success.Prefix
	}

	tag := prefix.Text
	if r.format == FormatTerminal {
		tag = prefix.Style.Sprint(" " + prefix.Text + " ")
	}

	line := fmt.Sprintf("%s %s", tag, result.Message)
	if result.ErrorMessage != "" {
		line += "\n  " + result.ErrorMessage
	}
	return line
}

func (r *Renderer) styled(status types.StepStatus, text string) string {
	if r.format != FormatTerminal {
		return "[" + strings.TrimSpace(text) + "]"
	}
	return StatusStyle(status).Sprint(text)
}

func (r *Renderer) label(text string) string {
	if r.format != FormatTerminal {
		return text
	}
	return labelStyle.Renderer(r.lg).Render(text)
}

func (r *Renderer) value(text string) string {
	if r.format != FormatTerminal {
		return text
	}
	return valueStyle.Renderer(r.lg).Render(text)
}
