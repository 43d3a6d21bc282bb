package options

import "fmt"

// Sources is the external enumeration of mix sources a Source option selects from.
type Sources interface {
	SourceName(id uint32) string
	FirstSource() uint32
	LastSource() uint32
}

// SourceTable is a Sources backed by a name slice; id 0 is "none".
type SourceTable []string

func (t SourceTable) SourceName(id uint32) string {
	if int(id) < len(t) {
		return t[id]
	}
	return fmt.Sprintf("SRC%d", id)
}

func (t SourceTable) FirstSource() uint32 { return 1 }

func (t SourceTable) LastSource() uint32 {
	if len(t) == 0 {
		return 0
	}
	return uint32(len(t) - 1)
}

// DefaultSources lists the sources of a stock model.
var DefaultSources = buildDefaultSources()

func buildDefaultSources() SourceTable {
	t := SourceTable{"---", "Rud", "Ele", "Thr", "Ail", "S1", "6P", "S2", "LS", "RS", "MAX"}
	for _, sw := range "ABCDEFGH" {
		t = append(t, fmt.Sprintf("S%c", sw))
	}
	for ch := 1; ch <= 16; ch++ {
		t = append(t, fmt.Sprintf("CH%d", ch))
	}
	for tm := 1; tm <= MaxTimers; tm++ {
		t = append(t, fmt.Sprintf("Tmr%d", tm))
	}
	return append(t, "RSSI", "Batt")
}
