// Package console writes pipeline completion lines to the terminal.
package console

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/FilipeBeck/pipe-builder/internal/ui/output"
	"github.com/FilipeBeck/pipe-builder/internal/ui/style"
	"github.com/muesli/termenv"
)

var _ ports.Reporter = (*Reporter)(nil)

// Separator joins the parts of a report line.
const Separator = " - "

// Reporter writes one colored line per report.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewReporter creates a Reporter writing to w, or stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		out: output.NewWithProfile(w, func() termenv.Profile {
			return output.ProfileFor(w)
		}),
	}
}

// Report joins parts with Separator and writes them as a single line.
// Success lines are green with a check mark, failure lines red with a cross.
func (r *Reporter) Report(level domain.ReportLevel, parts ...string) {
	icon, color := style.Check, style.Green
	if level == domain.ReportFailure {
		icon, color = style.Cross, style.Red
	}

	line := icon + " " + strings.Join(parts, Separator)
	styled := r.out.String(line).Foreground(termenv.RGBColor(string(color)))

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.out.WriteString(styled.String() + "\n")
}
