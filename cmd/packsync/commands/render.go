package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"go.trai.ch/packsync/internal/app"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/packsync/internal/ui/output"
	"go.trai.ch/packsync/internal/ui/style"
)

const savedAtLayout = "2006-01-02 15:04:05"

func renderSaved(w io.Writer, saved domain.NamedProfile) {
	out := output.New(w)
	p := saved.Profile
	_, _ = fmt.Fprintf(w, "%s Saved profile %s: %d package(s), %s %s, node %s\n",
		output.Colorize(out, style.Check, string(style.Green)),
		strconv.Quote(saved.Name),
		p.PackageCount,
		p.Manager,
		p.ManagerVersion,
		p.NodeVersion,
	)
}

func renderRestore(w io.Writer, res app.RestoreResult) {
	out := output.New(w)
	r := res.Report

	_, _ = fmt.Fprintf(w, "Restored %s with %s: %s, %s, %s\n",
		strconv.Quote(res.Name),
		res.Manager,
		output.Colorize(out, fmt.Sprintf("%s %d succeeded", style.Check, len(r.Succeeded)), string(style.Green)),
		output.Colorize(out, fmt.Sprintf("%s %d failed", style.Cross, len(r.Failed)), string(style.Red)),
		output.Colorize(out, fmt.Sprintf("%s %d skipped", style.Warning, len(r.Skipped)), string(style.Yellow)),
	)

	if len(r.Failed) == 0 {
		return
	}

	for _, spec := range r.Failed {
		_, _ = fmt.Fprintf(w, "  %s %s\n", output.Colorize(out, style.Cross, string(style.Red)), spec)
	}
	if res.ScriptPath != "" {
		_, _ = fmt.Fprintf(w, "Retry the failed installs with: sh %s\n", res.ScriptPath)
	}
}

func renderDiff(w io.Writer, d domain.ProfileDiff) {
	out := output.New(w)

	_, _ = fmt.Fprintf(w, "%s %s %s\n", strconv.Quote(d.From), style.Arrow, strconv.Quote(d.To))
	for _, spec := range d.Added {
		_, _ = fmt.Fprintln(w, output.Colorize(out, style.Plus+" "+spec.String(), string(style.Green)))
	}
	for _, spec := range d.Removed {
		_, _ = fmt.Fprintln(w, output.Colorize(out, style.Minus+" "+spec.String(), string(style.Red)))
	}
	for _, ch := range d.Changed {
		line := fmt.Sprintf("%s %s: %s %s %s", style.Tilde, ch.Name, ch.From, style.Arrow, ch.To)
		_, _ = fmt.Fprintln(w, output.Colorize(out, line, string(style.Yellow)))
	}

	if d.Identical() {
		_, _ = fmt.Fprintln(w, "Profiles are identical")
	}
	_, _ = fmt.Fprintf(w, "%d added, %d removed, %d changed, %d unchanged\n",
		len(d.Added), len(d.Removed), len(d.Changed), len(d.Unchanged))
}

func renderList(w io.Writer, profiles []domain.NamedProfile) error {
	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(w, "No saved profiles")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tMANAGER\tPACKAGES\tSAVED\tFINGERPRINT")
	for _, np := range profiles {
		p := np.Profile
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			np.Name,
			p.Manager,
			p.Packages.Len(),
			p.SavedAt.Format(savedAtLayout),
			domain.ShortFingerprint(p.Packages),
		)
	}
	return tw.Flush()
}
