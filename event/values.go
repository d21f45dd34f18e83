package event

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	segmentSep = "|"
	pairSep    = ":"
)

// ParseFactValues parses a FactValues string of the form
//
//	AUTHOR:ct_plus|GM_AUTHOR:pr_plus
//
// into a map from source to factuality tag.
func ParseFactValues(s string) (map[string]string, error) {
	values := map[string]string{}
	err := splitPairs(s, func(key, val string) error {
		values[key] = val
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("FactValues %q: %w", s, err)
	}
	return values, nil
}

// ParsePragValues parses a PragValues string of the form
//
//	ct_plus:6|ct_minus:4
//
// into a map from pragmatic tag to annotator count.
func ParsePragValues(s string) (map[string]int, error) {
	values := map[string]int{}
	err := splitPairs(s, func(key, val string) error {
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: count %q is not a non-negative integer", ErrMalformed, val)
		}
		values[key] = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("PragValues %q: %w", s, err)
	}
	return values, nil
}

func splitPairs(s string, fn func(key, val string) error) error {
	for _, segment := range strings.Split(s, segmentSep) {
		if segment == "" {
			return fmt.Errorf("%w: empty segment", ErrMalformed)
		}

		parts := strings.Split(segment, pairSep)
		if len(parts) != 2 {
			return fmt.Errorf("%w: segment %q is not key:value", ErrMalformed, segment)
		}

		if err := fn(parts[0], parts[1]); err != nil {
			return err
		}
	}

	return nil
}

// FormatFactValues is the inverse of ParseFactValues. Sources are sorted.
func FormatFactValues(values map[string]string) string {
	segments := make([]string, 0, len(values))
	for _, k := range sortedKeys(values) {
		segments = append(segments, k+pairSep+values[k])
	}
	return strings.Join(segments, segmentSep)
}

// FormatPragValues is the inverse of ParsePragValues. Tags are sorted.
func FormatPragValues(values map[string]int) string {
	segments := make([]string, 0, len(values))
	for _, k := range sortedKeys(values) {
		segments = append(segments, k+pairSep+strconv.Itoa(values[k]))
	}
	return strings.Join(segments, segmentSep)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
