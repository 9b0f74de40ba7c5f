// Package logx writes short "[tag] msg key=value" lines without fmt.
// On the MCU the builtin println is the default sink; firmware may point
// Output at a UART instead.
package logx

import (
	"time"

	"offtime-go/x/conv"
)

// Output receives one finished line without a trailing newline.
var Output = func(line string) { println(line) }

// Hex8 renders as 0xNN.
type Hex8 uint8

// Info logs msg with key/value pairs. An odd trailing key is printed bare.
func Info(tag, msg string, kv ...any) { Output(Format("", tag, msg, kv...)) }

// Warn is Info with a WARN marker.
func Warn(tag, msg string, kv ...any) { Output(Format("WARN ", tag, msg, kv...)) }

// Format builds the line Info and Warn emit.
func Format(level, tag, msg string, kv ...any) string {
	b := make([]byte, 0, 64)
	b = append(b, level...)
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, "] "...)
	b = append(b, msg...)
	for i := 0; i < len(kv); i += 2 {
		b = append(b, ' ')
		if i+1 == len(kv) {
			b = appendValue(b, kv[i])
			break
		}
		b = appendValue(b, kv[i])
		b = append(b, '=')
		b = appendValue(b, kv[i+1])
	}
	return string(b)
}

func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(b, "nil"...)
	case string:
		return append(b, x...)
	case bool:
		if x {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case Hex8:
		return conv.AppendHex8(b, uint8(x))
	case int:
		return conv.AppendInt(b, int64(x))
	case int64:
		return conv.AppendInt(b, x)
	case uint8:
		return conv.AppendUint(b, uint64(x))
	case uint16:
		return conv.AppendUint(b, uint64(x))
	case uint32:
		return conv.AppendUint(b, uint64(x))
	case uint64:
		return conv.AppendUint(b, x)
	case time.Duration:
		return conv.AppendMillis(b, int64(x))
	case error:
		return append(b, x.Error()...)
	case interface{ String() string }:
		return append(b, x.String()...)
	default:
		return append(b, '?')
	}
}
