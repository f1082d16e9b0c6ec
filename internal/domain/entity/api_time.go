package entity

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de fecha aceptados del backend. El API .NET serializa DateTime sin
// zona horaria ("2024-01-05T10:30:00"), pero algunos endpoints ya emiten RFC3339.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// APITime envuelve time.Time para tolerar las variantes ISO-8601 del backend.
type APITime struct {
	time.Time
}

// NewAPITime construye un APITime a partir de un time.Time.
func NewAPITime(t time.Time) APITime {
	return APITime{Time: t}
}

// UnmarshalJSON acepta cualquiera de los layouts conocidos. Cadena vacía o null
// deja el valor en cero en lugar de fallar.
func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("entity: fecha no reconocida %q", s)
}

// MarshalJSON emite RFC3339, el formato que consume el frontend.
func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
