// Package render converts conversations into individual Markdown documents.
//
// Each conversation becomes one file under the output directory: a title
// heading followed by one block per message, labeled by sender role. The
// renderer reports an explicit outcome per conversation instead of writing
// to the console, so callers decide how to surface progress.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/convoctl/internal/archive"
	"github.com/fyrsmithlabs/convoctl/internal/sanitize"
	"github.com/fyrsmithlabs/convoctl/internal/textrepair"
)

// Status classifies a per-conversation outcome.
type Status string

const (
	// StatusRendered means the document was written (or would be, in dry-run).
	StatusRendered Status = "rendered"
	// StatusSkipped means the conversation was intentionally not written.
	StatusSkipped Status = "skipped"
	// StatusFailed means writing the document failed.
	StatusFailed Status = "failed"
)

// Skip reasons reported in outcomes.
const (
	ReasonNoMessages = "no messages"
	ReasonEmpty      = "no title and no message text"
	ReasonExists     = "output file already exists"
)

// Outcome is the result of processing one conversation.
type Outcome struct {
	Title  string
	Path   string
	Status Status
	Reason string // set for StatusSkipped
	Err    error  // set for StatusFailed
}

// Summary aggregates the outcomes of one conversion run.
type Summary struct {
	Outcomes []Outcome
	Rendered int
	Skipped  int
	Failed   int
	DryRun   bool
}

// Options configures a conversion run.
type Options struct {
	// OutputDir is the directory documents are written under.
	OutputDir string
	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool
	// DryRun computes and reports every decision but writes nothing.
	DryRun bool
	// MaxNameLength bounds sanitized filename stems; <= 0 uses the default.
	MaxNameLength int
}

// Renderer writes conversation documents.
type Renderer struct {
	opts Options
}

// New creates a renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Run processes every conversation in the archive and returns the
// aggregated outcomes. The output directory is created up front unless in
// dry-run mode; a failure there aborts the run before any documents are
// written.
func (r *Renderer) Run(arc archive.Archive) (*Summary, error) {
	if !r.opts.DryRun {
		if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating output directory: %v", archive.ErrWriteFailed, err)
		}
	}

	summary := &Summary{DryRun: r.opts.DryRun}
	claimed := make(map[string]struct{})
	for i, c := range arc {
		o := r.renderOne(c, i+1, claimed)
		summary.Outcomes = append(summary.Outcomes, o)
		switch o.Status {
		case StatusRendered:
			summary.Rendered++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}
	return summary, nil
}

// renderOne processes a single conversation. index is 1-based; claimed
// tracks filename stems already taken in this run for collision
// suffixing.
func (r *Renderer) renderOne(c archive.Conversation, index int, claimed map[string]struct{}) Outcome {
	title := c.Title(index)

	if len(c.Messages) == 0 {
		return Outcome{Title: title, Status: StatusSkipped, Reason: ReasonNoMessages}
	}
	if c.Name == "" && !hasText(c) {
		return Outcome{Title: title, Status: StatusSkipped, Reason: ReasonEmpty}
	}

	stem := sanitize.Name(title, r.opts.MaxNameLength)
	if stem == "" {
		// A title of only removable characters sanitizes to nothing;
		// fall back to the positional stem so the document still gets
		// a usable name.
		stem = fmt.Sprintf("conversation_%d", index)
	}
	// A suffixed stem can itself equal another conversation's sanitized
	// title, so keep bumping until the candidate is unclaimed.
	base := stem
	for n := 2; ; n++ {
		if _, taken := claimed[stem]; !taken {
			break
		}
		stem = fmt.Sprintf("%s_%d", base, n)
	}
	claimed[stem] = struct{}{}
	path := filepath.Join(r.opts.OutputDir, stem+".md")

	if _, err := os.Stat(path); err == nil && !r.opts.Overwrite {
		return Outcome{Title: title, Path: path, Status: StatusSkipped, Reason: ReasonExists}
	}

	if r.opts.DryRun {
		return Outcome{Title: title, Path: path, Status: StatusRendered}
	}

	if err := os.WriteFile(path, []byte(Document(title, c.Messages)), 0o644); err != nil {
		return Outcome{
			Title:  title,
			Path:   path,
			Status: StatusFailed,
			Err:    fmt.Errorf("%w: %v", archive.ErrWriteFailed, err),
		}
	}
	return Outcome{Title: title, Path: path, Status: StatusRendered}
}

// Document renders the Markdown body for one conversation.
func Document(title string, messages []archive.Message) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, m := range messages {
		if m.IsHuman() {
			b.WriteString("**You:**\n\n")
		} else {
			b.WriteString("**Assistant:**\n\n")
		}
		b.WriteString(textrepair.Repair(strings.TrimSpace(m.Text)))
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}

// hasText reports whether any message body is non-blank.
func hasText(c archive.Conversation) bool {
	for _, m := range c.Messages {
		if strings.TrimSpace(m.Text) != "" {
			return true
		}
	}
	return false
}
