package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
)

// writerConsole prints every line with the time and the current prefixes.
// lineprefix adds the space between the prefix and the text.
type writerConsole struct {
	out      io.Writer
	prefixes []string
}

// NewStdErrConsole keeps stdout free for the rendered results.
func NewStdErrConsole() Console {
	return NewWriterConsole(os.Stderr)
}

func NewWriterConsole(w io.Writer) Console {
	result := &writerConsole{}
	result.out = lineprefix.New(lineprefix.Writer(w), lineprefix.PrefixFunc(result.prefix))
	return result
}

func (o *writerConsole) prefix() string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	return strings.TrimRight(builder.String(), " ")
}

func (o *writerConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	if len(o.prefixes) == 0 {
		return
	}

	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
