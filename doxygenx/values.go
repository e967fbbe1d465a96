package doxygenx

import (
	"sort"
	"strconv"
	"strings"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/utils"
)

// Values holds option overrides keyed by option key.
// A key that was never set, or was Unset, resolves to its registry default.
// The zero value and a nil *Values are both empty and ready to read.
type Values struct {
	set map[string]value
}

type value struct {
	b bool
	n int
	s string
}

// NewValues returns an empty value set.
func NewValues() *Values {
	return &Values{set: make(map[string]value)}
}

// SetBool overrides a boolean option.
func (v *Values) SetBool(key string, b bool) error {
	if _, err := lookupKind(key, "doxygenx.SetBool", KindBool); err != nil {
		return err
	}
	v.store(key, value{b: b})
	return nil
}

// SetInt overrides an integer option.
func (v *Values) SetInt(key string, n int) error {
	if _, err := lookupKind(key, "doxygenx.SetInt", KindInt); err != nil {
		return err
	}
	v.store(key, value{n: n})
	return nil
}

// SetString overrides a string or quoted string option.
// An empty or blank string is kept but resolves to the default.
func (v *Values) SetString(key, s string) error {
	if _, err := lookupKind(key, "doxygenx.SetString", KindString, KindQuotedString); err != nil {
		return err
	}
	v.store(key, value{s: s})
	return nil
}

// Set parses text according to the option kind and stores it.
// Booleans accept YES/NO, true/false, on/off and 1/0 in any case.
func (v *Values) Set(key, text string) error {
	const op = "doxygenx.Set"
	opt, err := lookup(key, op)
	if err != nil {
		return err
	}

	switch opt.Kind {
	case KindBool:
		b, ok := ParseBool(text)
		if !ok {
			return errors.Build(errors.CodeInvalidArgument).
				WithOp(op).
				WithMsgf("option %s expects YES or NO, got %q", key, text).
				WithDetails("key", key).
				Err()
		}
		v.store(key, value{b: b})
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return errors.Build(errors.CodeInvalidArgument).
				WithOp(op).
				WithErr(err).
				WithMsgf("option %s expects an integer, got %q", key, text).
				WithDetails("key", key).
				Err()
		}
		v.store(key, value{n: n})
	default:
		v.store(key, value{s: text})
	}
	return nil
}

// Apply sets every key of overrides with Set, in key order, and stops at the first error.
func (v *Values) Apply(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := v.Set(k, overrides[k]); err != nil {
			return err
		}
	}
	return nil
}

// Unset removes an override so the key resolves to its default again.
func (v *Values) Unset(key string) {
	if v == nil || v.set == nil {
		return
	}
	delete(v.set, key)
}

// IsSet reports whether key has an override.
func (v *Values) IsSet(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v.set[key]
	return ok
}

// SetKeys returns the overridden keys in declaration order.
func (v *Values) SetKeys() []string {
	var keys []string
	for _, o := range registry {
		if v.IsSet(o.Key) {
			keys = append(keys, o.Key)
		}
	}
	return keys
}

// Len returns the number of overrides.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.set)
}

// Clone returns an independent copy.
func (v *Values) Clone() *Values {
	c := NewValues()
	if v != nil {
		for k, val := range v.set {
			c.set[k] = val
		}
	}
	return c
}

// Bool returns the resolved value of a boolean option.
// Unknown keys and other kinds return false.
func (v *Values) Bool(key string) bool {
	opt, ok := Lookup(key)
	if !ok || opt.Kind != KindBool {
		return false
	}
	if val, ok := v.get(key); ok {
		return val.b
	}
	return opt.DefaultBool()
}

// Int returns the resolved value of an integer option.
// Unknown keys and other kinds return 0.
func (v *Values) Int(key string) int {
	opt, ok := Lookup(key)
	if !ok || opt.Kind != KindInt {
		return 0
	}
	if val, ok := v.get(key); ok {
		return val.n
	}
	return opt.DefaultInt()
}

// String returns the resolved, unquoted value of a string option.
// Unknown keys and other kinds return "".
func (v *Values) String(key string) string {
	opt, ok := Lookup(key)
	if !ok || (opt.Kind != KindString && opt.Kind != KindQuotedString) {
		return ""
	}
	return resolveString(opt, v)
}

// Resolve returns the text written for key: YES/NO for booleans, base-10
// integers, and strings with blank overrides replaced by the default.
// Quoted strings are wrapped in double quotes after default substitution.
func (v *Values) Resolve(key string) (string, error) {
	opt, err := lookup(key, "doxygenx.Resolve")
	if err != nil {
		return "", err
	}
	return resolve(opt, v), nil
}

func resolve(opt Option, v *Values) string {
	switch opt.Kind {
	case KindBool:
		if val, ok := v.get(opt.Key); ok {
			return FormatBool(val.b)
		}
		return opt.Default
	case KindInt:
		if val, ok := v.get(opt.Key); ok {
			return strconv.Itoa(val.n)
		}
		return strconv.Itoa(opt.DefaultInt())
	case KindQuotedString:
		return `"` + resolveString(opt, v) + `"`
	default:
		return resolveString(opt, v)
	}
}

func resolveString(opt Option, v *Values) string {
	if val, ok := v.get(opt.Key); ok && strings.TrimSpace(val.s) != "" {
		return val.s
	}
	return opt.Default
}

func (v *Values) get(key string) (value, bool) {
	if v == nil {
		return value{}, false
	}
	val, ok := v.set[key]
	return val, ok
}

func (v *Values) store(key string, val value) {
	if v.set == nil {
		v.set = make(map[string]value)
	}
	v.set[key] = val
}

// FormatBool returns YES or NO.
func FormatBool(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// ParseBool parses YES/NO, true/false, on/off and 1/0 in any case.
func ParseBool(s string) (bool, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "TRUE", "ON", "1":
		return true, true
	case "NO", "FALSE", "OFF", "0":
		return false, true
	default:
		return false, false
	}
}

func lookup(key, op string) (Option, error) {
	opt, ok := Lookup(key)
	if ok {
		return opt, nil
	}
	b := errors.Build(errors.CodeInvalidArgument).WithOp(op).WithDetails("key", key)
	if hint, found := utils.Closest(key, Keys(), 3); found {
		return Option{}, b.WithMsgf("unknown option %q (did you mean %s?)", key, hint).Err()
	}
	return Option{}, b.WithMsgf("unknown option %q", key).Err()
}

func lookupKind(key, op string, kinds ...Kind) (Option, error) {
	opt, err := lookup(key, op)
	if err != nil {
		return opt, err
	}
	for _, k := range kinds {
		if opt.Kind == k {
			return opt, nil
		}
	}
	return opt, errors.Build(errors.CodeInvalidArgument).
		WithOp(op).
		WithMsgf("option %s is %s, not %s", key, opt.Kind, kinds[0]).
		WithDetails("key", key, "kind", opt.Kind.String()).
		Err()
}
