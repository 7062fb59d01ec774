package testutil

import (
	"fmt"

	"github.com/santikid/clink/pkg/linkgroup"
)

// Recorder is a linkgroup.Reporter that keeps every event as a line such as
// "link /src -> /dst", "ok /src -> /dst", "unlink /dst" or "prune /dir".
type Recorder struct {
	Events []string
}

func (r *Recorder) Linked(source, link string) {
	r.Events = append(r.Events, fmt.Sprintf("link %s -> %s", source, link))
}

func (r *Recorder) AlreadyLinked(source, link string) {
	r.Events = append(r.Events, fmt.Sprintf("ok %s -> %s", source, link))
}

func (r *Recorder) Unlinked(link string) {
	r.Events = append(r.Events, "unlink "+link)
}

func (r *Recorder) Pruned(dir string) {
	r.Events = append(r.Events, "prune "+dir)
}

var _ linkgroup.Reporter = (*Recorder)(nil)
