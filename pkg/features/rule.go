package features

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/santikid/clink/pkg/errors"
)

// RuleKind names one of the enablement variants.
type RuleKind string

const (
	RuleNone    RuleKind = "none"
	RuleAll     RuleKind = "all"
	RuleMacOS   RuleKind = "macos"
	RuleLinux   RuleKind = "linux"
	RuleCommand RuleKind = "command"
)

const commandPrefix = "command:"

// Rule decides whether a feature is enabled on a host. The zero value is the
// none rule. Command and Args are only meaningful for RuleCommand.
//
// Command names the program itself and is never split: "/opt/My Tools/check"
// runs that file. Args are passed as given.
type Rule struct {
	Kind    RuleKind
	Command string
	Args    []string
}

// Always, Never, OnMacOS, OnLinux and WhenCommand build rules in code.
func Always() Rule  { return Rule{Kind: RuleAll} }
func Never() Rule   { return Rule{Kind: RuleNone} }
func OnMacOS() Rule { return Rule{Kind: RuleMacOS} }
func OnLinux() Rule { return Rule{Kind: RuleLinux} }

func WhenCommand(cmd string, args ...string) Rule {
	r := Rule{Kind: RuleCommand, Command: cmd}
	if len(args) > 0 {
		r.Args = args
	}
	return r
}

// SplitArgs splits an argument string with shell quoting rules.
func SplitArgs(s string) ([]string, error) {
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "cannot parse command arguments %q", s)
	}
	return args, nil
}

// ParseRule parses the textual form of a rule: all, macos, linux, none or
// command:<cmd>. Keywords are case-insensitive.
func ParseRule(s string) (Rule, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= len(commandPrefix) && strings.EqualFold(trimmed[:len(commandPrefix)], commandPrefix) {
		cmd := strings.TrimSpace(trimmed[len(commandPrefix):])
		if cmd == "" {
			return Rule{}, errors.New(errors.ErrConfigValid, "command rule requires a command")
		}
		return WhenCommand(cmd), nil
	}

	switch RuleKind(strings.ToLower(trimmed)) {
	case RuleAll:
		return Always(), nil
	case RuleNone:
		return Never(), nil
	case RuleMacOS:
		return OnMacOS(), nil
	case RuleLinux:
		return OnLinux(), nil
	case RuleCommand:
		return Rule{}, errors.New(errors.ErrConfigValid, "command rule requires a command")
	}
	return Rule{}, errors.Newf(errors.ErrConfigValid, "unknown enablement rule %q", s).
		WithDetail("rule", s)
}

// Evaluate reports whether the rule holds on the given host.
func (r Rule) Evaluate(h Host) bool {
	switch r.Kind {
	case RuleAll:
		return true
	case RuleMacOS:
		return h.OS == "darwin"
	case RuleLinux:
		return h.OS == "linux"
	case RuleCommand:
		if h.RunCommand == nil {
			return false
		}
		return h.RunCommand(r.Command, r.Args)
	default:
		return false
	}
}

func (r Rule) String() string {
	switch r.Kind {
	case RuleCommand:
		if len(r.Args) > 0 {
			return commandPrefix + r.Command + " " + shellquote.Join(r.Args...)
		}
		return commandPrefix + r.Command
	case "":
		return string(RuleNone)
	default:
		return string(r.Kind)
	}
}

// MarshalText implements encoding.TextMarshaler. A command rule with
// arguments has no text form.
func (r Rule) MarshalText() ([]byte, error) {
	if r.Kind == RuleCommand && len(r.Args) > 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "rule %s has arguments and no text form", r.String())
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// GoString keeps %#v output readable in test failures.
func (r Rule) GoString() string {
	return fmt.Sprintf("features.Rule(%s)", r.String())
}
