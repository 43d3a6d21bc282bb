package options

import (
	"fmt"
	"strconv"

	"github.com/muurk/mainviews/internal/lcd"
)

// Format returns v as text, the way the editor labels it.
func Format(opt Option, v Value, sources Sources) string {
	if sources == nil {
		sources = DefaultSources
	}
	switch opt.Kind {
	case Bool:
		return strconv.FormatBool(v.Bool)
	case Integer:
		return strconv.Itoa(int(v.Signed))
	case String:
		return strconv.Quote(v.String)
	case TextSize:
		return TextSizeLabels[min(int(v.Unsigned), TextSizeMax)]
	case Timer:
		return fmt.Sprintf("Timer %d", v.Unsigned+1)
	case Source:
		return sources.SourceName(v.Unsigned)
	case Color:
		return lcd.Hex(uint16(v.Unsigned))
	default:
		return fmt.Sprintf("%+v", v)
	}
}
