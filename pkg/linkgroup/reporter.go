package linkgroup

// Reporter receives progress events as a group mutates the filesystem.
type Reporter interface {
	Linked(source, link string)
	AlreadyLinked(source, link string)
	Unlinked(link string)
	Pruned(dir string)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Linked(string, string)        {}
func (NopReporter) AlreadyLinked(string, string) {}
func (NopReporter) Unlinked(string)              {}
func (NopReporter) Pruned(string)                {}

var _ Reporter = NopReporter{}
