package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/zoobzio/utf7/convert"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of the command line options.
type fileConfig struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	Indirect   string `yaml:"indirect"`
	BOM        string `yaml:"bom"`
	BufferSize int    `yaml:"buffer_size"`
	Report     string `yaml:"report"`
}

// applyConfigFile fills every option that was not set on the command line
// from the YAML file named by --config.
func (i *Input) applyConfigFile(flags *pflag.FlagSet) error {
	data, err := os.ReadFile(i.configFile)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%s: %w", i.configFile, err)
	}
	log.Debugf("Loaded options from %s", i.configFile)

	if fc.From != "" && !flags.Changed("from") {
		i.from = fc.From
	}
	if fc.To != "" && !flags.Changed("to") {
		i.to = fc.To
	}
	if fc.Indirect != "" && !flags.Changed("indirect") {
		i.indirect = fc.Indirect
	}
	if fc.BufferSize != 0 && !flags.Changed("buffer-size") {
		i.bufferSize = fc.BufferSize
	}
	if fc.Report != "" && !flags.Changed("report") {
		i.report = fc.Report
	}
	if !flags.Changed("add-bom") && !flags.Changed("clear-bom") {
		mode, err := convert.ParseBOMMode(fc.BOM)
		if err != nil {
			return fmt.Errorf("%s: %w", i.configFile, err)
		}
		i.addBOM = mode == convert.BOMAdd
		i.clearBOM = mode == convert.BOMRemove
	}
	return nil
}
