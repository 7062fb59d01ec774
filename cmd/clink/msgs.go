package clink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link feature-tagged dotfile directories into place"
	MsgLinkShort       = "Link enabled feature directories into their targets"
	MsgUnlinkShort     = "Remove links created by link"
	MsgStatusShort     = "Show link status per target"
	MsgFeaturesShort   = "List configured features and whether they are enabled"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionTemplate = "clink version {{.Version}} (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir          = "Directory to scan for feature directories (default: current directory)"
	MsgFlagConfig       = "Config file (default: first of clink.yaml, clink.yml, .clink.yaml, clink.toml)"
	MsgFlagNoColor      = "Disable colored output"
	MsgFlagLeaveOrphans = "Keep directories left empty after removing links"
	MsgFlagFormat       = "Output format: table, yaml, toml or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/unlink-example.txt
	msgUnlinkExampleRaw string
	MsgUnlinkExample    = strings.TrimRight(msgUnlinkExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/features-long.txt
	msgFeaturesLongRaw string
	MsgFeaturesLong    = strings.TrimSpace(msgFeaturesLongRaw)

	//go:embed msgs/features-example.txt
	msgFeaturesExampleRaw string
	MsgFeaturesExample    = strings.TrimRight(msgFeaturesExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
