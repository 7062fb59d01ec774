package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/santikid/clink/pkg/errors"
)

// GetHomeDirectory returns the user's home directory.
// It prefers os.UserHomeDir and falls back to the xdg package's view of home.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
}

// ExpandHome expands a leading ~ or ~/ to the home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// ExpandEnv replaces $VAR and ${VAR} references. Unlike os.ExpandEnv an
// undefined variable is an error rather than an empty string.
func ExpandEnv(path string) (string, error) {
	missing := map[string]bool{}
	expanded := os.Expand(path, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			missing[name] = true
		}
		return value
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", errors.Newf(errors.ErrConfigValid, "undefined environment variable(s) %s in %q",
			strings.Join(names, ", "), path).
			WithDetail("path", path)
	}
	return expanded, nil
}

// ExpandTarget expands a target template into a clean absolute path.
// Relative results are resolved against base.
func ExpandTarget(template, base string) (string, error) {
	if err := ValidatePath(template); err != nil {
		return "", err
	}

	expanded, err := ExpandHome(template)
	if err != nil {
		return "", err
	}
	expanded, err = ExpandEnv(expanded)
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", errors.Newf(errors.ErrConfigValid, "target %q expands to an empty path", template)
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve target %q", template)
	}
	return abs, nil
}

// IsWithin reports whether path lies strictly below root.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
