// Package logx is the shell's logger. Lines look like the bring-up prints
// used across the firmware:
//
//	[shell] sleep requested app=menu
//
// Formatting avoids fmt and strconv so the package stays cheap on MCU
// builds. Where lines end up is decided by the installed Sink: the console
// by default, a UART on boards, a structured logger on the host.
package logx

import (
	"io"

	"pixelshell-go/x/conv"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

// Sink receives every record at or above the current level.
type Sink interface {
	Log(l Level, component, msg string, kv []any)
}

var (
	sink  Sink = Console{}
	level      = LevelInfo
)

// SetSink installs s; nil restores the console sink.
func SetSink(s Sink) {
	if s == nil {
		s = Console{}
	}
	sink = s
}

func SetLevel(l Level) { level = l }

func Debug(component, msg string, kv ...any) { emit(LevelDebug, component, msg, kv) }
func Info(component, msg string, kv ...any)  { emit(LevelInfo, component, msg, kv) }
func Warn(component, msg string, kv ...any)  { emit(LevelWarn, component, msg, kv) }
func Error(component, msg string, kv ...any) { emit(LevelError, component, msg, kv) }

func emit(l Level, component, msg string, kv []any) {
	if l < level {
		return
	}
	sink.Log(l, component, msg, kv)
}

// Format renders a record as a single line without a trailing newline.
func Format(l Level, component, msg string, kv []any) string {
	b := make([]byte, 0, 64)
	b = append(b, '[')
	b = append(b, component...)
	b = append(b, "] "...)
	if l >= LevelWarn {
		b = append(b, l.String()...)
		b = append(b, ": "...)
	}
	b = append(b, msg...)
	for i := 0; i+1 < len(kv); i += 2 {
		b = append(b, ' ')
		b = appendValue(b, kv[i])
		b = append(b, '=')
		b = appendValue(b, kv[i+1])
	}
	if len(kv)%2 == 1 {
		b = append(b, " !extra="...)
		b = appendValue(b, kv[len(kv)-1])
	}
	return string(b)
}

// Hex logs as 0x-prefixed hex, for addresses and registers.
type Hex uint16

func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case int:
		return conv.AppendInt(b, int64(x))
	case int64:
		return conv.AppendInt(b, x)
	case int32:
		return conv.AppendInt(b, int64(x))
	case uint8:
		return conv.AppendUint(b, uint64(x))
	case uint32:
		return conv.AppendUint(b, uint64(x))
	case Hex:
		return conv.AppendHex(b, uint32(x), 2)
	case bool:
		if x {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case error:
		return append(b, x.Error()...)
	case interface{ String() string }:
		return append(b, x.String()...)
	case nil:
		return append(b, "<nil>"...)
	default:
		return append(b, '?')
	}
}

// Console prints through the runtime's println, which works before any
// peripheral is configured.
type Console struct{}

func (Console) Log(l Level, component, msg string, kv []any) {
	println(Format(l, component, msg, kv))
}

// WriterSink writes one line per record to W.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Log(l Level, component, msg string, kv []any) {
	line := Format(l, component, msg, kv)
	_, _ = io.WriteString(s.W, line+"\r\n")
}
