package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zoobzio/utf7/convert"
	"gopkg.in/yaml.v3"
)

// writeReport prints conversion statistics in the requested format.
func writeReport(w io.Writer, format string, stats convert.Stats) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(stats)
	}
	return fmt.Errorf("unknown report format %q", format)
}
