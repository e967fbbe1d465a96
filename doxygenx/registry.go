package doxygenx

import (
	"fmt"
	"strconv"
)

// Kind classifies how an option value is parsed and written.
type Kind int

const (
	// KindBool values are written as YES or NO.
	KindBool Kind = iota + 1
	// KindInt values are written in base 10.
	KindInt
	// KindString values are written verbatim.
	KindString
	// KindQuotedString values are written wrapped in double quotes.
	KindQuotedString
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindQuotedString:
		return "quoted"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option describes one configuration key.
type Option struct {
	Key         string // Upper-case key as written in the file
	Kind        Kind   // Value kind
	Description string // Comment line written above the entry
	Default     string // Default value in file syntax, unquoted
}

// DefaultInt returns the default of an integer option.
func (o Option) DefaultInt() int {
	n, _ := strconv.Atoi(o.Default)
	return n
}

// DefaultBool returns the default of a boolean option.
func (o Option) DefaultBool() bool {
	return o.Default == "YES"
}

var registryIndex = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, o := range registry {
		idx[o.Key] = i
	}
	return idx
}()

// Options returns every option in declaration order.
// The returned slice is a copy.
func Options() []Option {
	out := make([]Option, len(registry))
	copy(out, registry)
	return out
}

// Keys returns every option key in declaration order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, o := range registry {
		keys[i] = o.Key
	}
	return keys
}

// Lookup returns the option registered under key.
func Lookup(key string) (Option, bool) {
	i, ok := registryIndex[key]
	if !ok {
		return Option{}, false
	}
	return registry[i], true
}
