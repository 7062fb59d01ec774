package features

import (
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/santikid/clink/pkg/logging"
)

// Host describes the machine rules are evaluated against.
type Host struct {
	// OS is a GOOS value such as "linux" or "darwin".
	OS string

	// RunCommand runs an enablement command and reports success.
	RunCommand func(name string, args []string) bool
}

// CurrentHost returns the running host.
func CurrentHost() Host {
	return Host{
		OS:         runtime.GOOS,
		RunCommand: runCommand,
	}
}

// runCommand runs the program name with args and reports whether it started
// and exited zero. name is used as is, spaces included. Output is discarded.
func runCommand(name string, args []string) bool {
	logger := logging.GetLogger("features.host")

	if strings.TrimSpace(name) == "" {
		logger.Debug().Msg("Empty enablement command")
		return false
	}

	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	logger.Debug().
		Str("command", name).
		Strs("args", args).
		Bool("success", err == nil).
		AnErr("result", err).
		Msg("Evaluated enablement command")
	return err == nil
}
