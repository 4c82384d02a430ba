package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Cifra is a float that tolerates the input a web form actually produces.
// Non-numeric text coerces to NaN instead of failing, and NaN is persisted
// as JSON null. Callers that need strict numbers must validate before writing;
// the store itself never rejects a Cifra.
type Cifra float64

// ParseCifra mimics lenient float parsing: the longest numeric prefix of the
// trimmed input wins ("12kg" → 12), and input with no numeric prefix is NaN.
func ParseCifra(s string) Cifra {
	s = strings.TrimSpace(s)
	for i := len(s); i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return Cifra(f)
		}
	}
	return Cifra(math.NaN())
}

// CifraDesdeJSON coerces an arbitrary JSON value: numbers pass through,
// strings go through ParseCifra, everything else (null, bool, objects,
// or an absent field's nil raw message) is NaN.
func CifraDesdeJSON(raw json.RawMessage) Cifra {
	if len(raw) == 0 {
		return Cifra(math.NaN())
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseCifra(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return Cifra(f)
	}
	return Cifra(math.NaN())
}

// EsValida reports whether the value is a usable finite number.
func (c Cifra) EsValida() bool {
	f := float64(c)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (c Cifra) Float64() float64 { return float64(c) }

func (c Cifra) MarshalJSON() ([]byte, error) {
	if !c.EsValida() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(c), 'f', -1, 64), nil
}

func (c *Cifra) UnmarshalJSON(b []byte) error {
	*c = CifraDesdeJSON(b)
	return nil
}
