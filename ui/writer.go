package ui

import (
	"fmt"
	"io"
	"strings"
)

// ── ANSI sequences ──────────────────────────────────────────────────────────

const (
	esc        = "\x1b"
	styleReset = esc + "[0m"
	clearSeq   = esc + "c" // full reset: clears the device and homes the cursor
)

// colours maps display colour names to SGR foreground codes. Unknown
// names simply emit no colour.
var colours = map[string]string{
	"black":         "30",
	"red":           "31",
	"green":         "32",
	"yellow":        "33",
	"blue":          "34",
	"magenta":       "35",
	"cyan":          "36",
	"white":         "37",
	"grey":          "90",
	"light red":     "91",
	"light green":   "92",
	"light yellow":  "93",
	"light blue":    "94",
	"light magenta": "95",
	"light cyan":    "96",
	"light white":   "97",
}

// Style describes how one field is written.
type Style struct {
	Colour  string
	Reverse bool
	// Width pads or truncates the text into a field of abs(Width)
	// characters; negative left-justifies, positive right-justifies,
	// zero emits the text at natural width.
	Width   int
	Newline bool
}

// Writer encodes styled fields into the sink's control-code stream.
// It is the sole owner of the sink for the process lifetime.
type Writer struct {
	sink io.Writer
}

// NewWriter wraps an open sink. A nil sink yields a writer whose calls
// are all no-ops, so formatting code never needs to guard.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{sink: sink}
}

// Write emits one styled field. Colour and reverse video are combined
// into a single style introduction, and every call that writes anything
// is closed with a style reset — unconditionally, so attributes can
// never bleed into the next field. The sink gives no acknowledgment;
// write errors are not observable and are dropped.
func (w *Writer) Write(text string, st Style) {
	if w == nil || w.sink == nil || text == "" {
		return
	}

	var attrs []string
	if st.Reverse {
		attrs = append(attrs, "7")
	}
	if code, ok := colours[st.Colour]; ok {
		attrs = append(attrs, code)
	}

	var b strings.Builder
	if len(attrs) > 0 {
		b.WriteString(esc + "[" + strings.Join(attrs, ";") + "m")
	}
	b.WriteString(justify(text, st.Width))
	b.WriteString(styleReset)
	if st.Newline {
		b.WriteByte('\n')
	}
	fmt.Fprint(w.sink, b.String())
}

// Clear wipes the device and homes the cursor. Requires the sink to be
// open; a nil sink is a no-op like everywhere else.
func (w *Writer) Clear() {
	if w == nil || w.sink == nil {
		return
	}
	fmt.Fprint(w.sink, clearSeq)
}

func justify(s string, width int) string {
	if width == 0 {
		return s
	}
	field := width
	if field < 0 {
		field = -field
	}
	if len(s) >= field {
		return s[:field]
	}
	pad := strings.Repeat(" ", field-len(s))
	if width < 0 {
		return s + pad
	}
	return pad + s
}
