package output

import (
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/santikid/clink/pkg/core"
	"github.com/santikid/clink/pkg/errors"
	"gopkg.in/yaml.v3"
)

// featureDocument is the top-level table TOML requires.
type featureDocument struct {
	Features []core.FeatureStatus `toml:"features"`
}

// RenderFeatures writes the feature listing in the given format.
func RenderFeatures(w io.Writer, list []core.FeatureStatus, format Format) error {
	switch format {
	case FormatTable:
		return RenderFeatureTable(w, list)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(featureDocument{Features: list}); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode json")
		}
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
}
