package convert

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/zoobzio/utf7"
	"github.com/zoobzio/utf7/utf8"
)

// ErrUnknownEncoding indicates a name that is not registered.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding describes a character encoding the converter can read or write.
type Encoding struct {
	// Name is the canonical name, e.g. "UTF-7".
	Name string

	// NewDecoder returns a fresh decoder for one stream.
	NewDecoder func() utf7.RuneDecoder

	// NewEncoder returns a fresh encoder for one stream. Encodings without
	// an indirect set ignore the argument.
	NewEncoder func(indirect string) utf7.RuneEncoder
}

// UTF7 is the UTF-7 encoding.
var UTF7 = &Encoding{
	Name:       "UTF-7",
	NewDecoder: func() utf7.RuneDecoder { return utf7.NewDecoder() },
	NewEncoder: func(indirect string) utf7.RuneEncoder {
		return utf7.NewEncoder(utf7.WithIndirect(indirect))
	},
}

// UTF8 is the UTF-8 encoding.
var UTF8 = &Encoding{
	Name:       "UTF-8",
	NewDecoder: func() utf7.RuneDecoder { return utf8.NewDecoder() },
	NewEncoder: func(string) utf7.RuneEncoder { return utf8.NewEncoder() },
}

var (
	registry   = make(map[string]*Encoding)
	registryMu sync.RWMutex
)

func init() {
	Register(UTF7, "7", "utf7", "utf-7", "UTF7", "UTF-7")
	Register(UTF8, "8", "utf8", "utf-8", "UTF8", "UTF-8")
}

// Register makes enc available under each of the given names.
// Registering a name again replaces the earlier encoding.
func Register(enc *Encoding, names ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, name := range names {
		registry[name] = enc
	}
}

// Lookup returns the encoding registered under name.
func Lookup(name string) (*Encoding, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if enc, ok := registry[name]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("%w, %s", ErrUnknownEncoding, name)
}

// Names returns the canonical names of all registered encodings, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, enc := range registry {
		if !seen[enc.Name] {
			seen[enc.Name] = true
			names = append(names, enc.Name)
		}
	}
	sort.Strings(names)
	return names
}
