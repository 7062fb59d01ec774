package output

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/santikid/clink/pkg/linkgroup"
)

// Reporter prints link group progress with pterm prefix printers.
type Reporter struct {
	verbose bool

	link   *pterm.PrefixPrinter
	ok     *pterm.PrefixPrinter
	unlink *pterm.PrefixPrinter
	prune  *pterm.PrefixPrinter
}

// NewReporter writes to w, or stdout if w is nil. Links that were already in
// place are only shown when verbose is set.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		verbose: verbose,
		link: pterm.Success.
			WithPrefix(pterm.Prefix{Text: "LINK", Style: pterm.Success.Prefix.Style}).
			WithWriter(w),
		ok: pterm.Info.
			WithPrefix(pterm.Prefix{Text: " OK ", Style: pterm.Info.Prefix.Style}).
			WithWriter(w),
		unlink: pterm.Warning.
			WithPrefix(pterm.Prefix{Text: "UNLINK", Style: pterm.Warning.Prefix.Style}).
			WithWriter(w),
		prune: pterm.Description.
			WithPrefix(pterm.Prefix{Text: "PRUNE", Style: pterm.Description.Prefix.Style}).
			WithWriter(w),
	}
}

func (r *Reporter) Linked(source, link string) {
	r.link.Printfln("linking %s -> %s", source, link)
}

func (r *Reporter) AlreadyLinked(source, link string) {
	if !r.verbose {
		return
	}
	r.ok.Printfln("%s -> %s", source, link)
}

func (r *Reporter) Unlinked(link string) {
	r.unlink.Printfln("unlinking %s", link)
}

func (r *Reporter) Pruned(dir string) {
	r.prune.Printfln("removing %s", dir)
}

var _ linkgroup.Reporter = (*Reporter)(nil)
