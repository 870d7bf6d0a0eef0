package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Write writes CLI output in the requested format.
//
// Supported formats:
// - json (default)
// - plain (key/value lines for humans and grep)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "plain":
		return WritePlain(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WritePlain renders a flat, line-oriented view. Structs go through JSON
// first so field naming matches the json tags the API uses.
func WritePlain(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var sb strings.Builder
	writePlainValue(&sb, "", x)
	_, err = io.WriteString(w, sb.String())
	return err
}

func writePlainValue(sb *strings.Builder, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writePlainValue(sb, joinPath(prefix, k), val[k])
		}
	case []any:
		if len(val) == 0 {
			fmt.Fprintf(sb, "%s: []\n", prefix)
			return
		}
		for i, item := range val {
			writePlainValue(sb, fmt.Sprintf("%s[%d]", prefix, i), item)
		}
	case nil:
		fmt.Fprintf(sb, "%s:\n", prefix)
	case float64:
		// JSON numbers arrive as float64; print integers without a decimal.
		if val == float64(int64(val)) {
			fmt.Fprintf(sb, "%s: %d\n", prefix, int64(val))
			return
		}
		fmt.Fprintf(sb, "%s: %v\n", prefix, val)
	default:
		fmt.Fprintf(sb, "%s: %v\n", prefix, val)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
