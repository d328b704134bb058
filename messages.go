package daylog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// JoinMessages turns the arguments of a level-named call into one message.
//
// A single slice or array argument is treated as the ordered sequence of
// values; otherwise the arguments themselves are the sequence. Each element is
// converted independently:
//   - maps, slices, arrays and structs go through serializer
//   - strings, byte slices, errors, fmt.Stringer values and numbers are kept as text
//   - nil, nil pointers, booleans and every other kind are dropped, as are
//     serializer failures and Error or String methods that panic
//
// Kept elements are joined with a single space and the result ends with a newline.
func JoinMessages(serializer Serializer, messages ...any) string {
	if serializer == nil {
		serializer = JSONSerializer{}
	}

	items := messages
	if len(messages) == 1 {
		if seq, ok := sequence(messages[0]); ok {
			items = seq
		}
	}

	parts := make([]string, 0, len(items))

	for _, item := range items {
		if text, ok := messageText(serializer, item); ok {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ") + "\n"
}

func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []byte:
		return nil, false
	case []string:
		seq := make([]any, len(v))
		for i, s := range v {
			seq[i] = s
		}

		return seq, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	seq := make([]any, rv.Len())
	for i := range rv.Len() {
		seq[i] = rv.Index(i).Interface()
	}

	return seq, true
}

//nolint:cyclop,exhaustive // One branch per value family; the default drops.
func messageText(serializer Serializer, value any) (string, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}

	switch v := value.(type) {
	case nil, bool:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case error:
		return methodText(v.Error)
	case time.Time:
		return v.Format(time.RFC3339), true
	case fmt.Stringer:
		return methodText(v.String)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return messageText(serializer, rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		text, err := serializer.Serialize(value)
		if err != nil {
			return "", false
		}

		return text, true
	default:
		return "", false
	}
}

// methodText calls an Error or String method, dropping the element when it panics.
func methodText(method func() string) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	return method(), true
}

// FormatLine renders one log line: "[date][LEVEL] message\n". The message is
// not escaped; a newline is appended only when message does not end with one.
func FormatLine(level, date, message string) string {
	var b strings.Builder

	b.Grow(len(date) + len(level) + len(message) + 6)
	b.WriteByte('[')
	b.WriteString(date)
	b.WriteString("][")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(message)

	if !strings.HasSuffix(message, "\n") {
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatTimestamp renders now with layout. Fractional seconds only keep their
// trailing zeros when written with zeros (".000000"); run layouts through
// PaddedLayout first to get a fixed width.
func FormatTimestamp(now time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateFormat
	}

	return now.Format(layout)
}

// PaddedLayout rewrites trimmed fractional seconds (".999", ",999999") into
// their zero-padded form so every timestamp has the same width.
func PaddedLayout(layout string) string {
	if !strings.Contains(layout, ".9") && !strings.Contains(layout, ",9") {
		return layout
	}

	out := []byte(layout)

	for i := 0; i < len(out)-1; i++ {
		if out[i] != '.' && out[i] != ',' {
			continue
		}

		for j := i + 1; j < len(out) && out[j] == '9'; j++ {
			out[j] = '0'
			i = j
		}
	}

	return string(out)
}
