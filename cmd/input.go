package cmd

import (
	"fmt"

	"github.com/zoobzio/utf7"
	"github.com/zoobzio/utf7/convert"
)

// Input contains the input for the root command
type Input struct {
	addBOM     bool
	clearBOM   bool
	indirect   string
	from       string
	to         string
	configFile string
	bufferSize int
	report     string
	verbose    bool
}

func (i *Input) bomMode() convert.BOMMode {
	switch {
	case i.addBOM:
		return convert.BOMAdd
	case i.clearBOM:
		return convert.BOMRemove
	}
	return convert.BOMPass
}

// convertConfig resolves encoding names and validates the indirect set.
func (i *Input) convertConfig() (convert.Config, error) {
	from, err := convert.Lookup(i.from)
	if err != nil {
		return convert.Config{}, err
	}
	to, err := convert.Lookup(i.to)
	if err != nil {
		return convert.Config{}, err
	}
	for j := 0; j < len(i.indirect); j++ {
		if !utf7.IsOptional(i.indirect[j]) {
			return convert.Config{}, fmt.Errorf("indirect set: %q is not an optional direct character", i.indirect[j])
		}
	}
	return convert.Config{
		From:       from,
		To:         to,
		Indirect:   i.indirect,
		BOM:        i.bomMode(),
		BufferSize: i.bufferSize,
	}, nil
}
