package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a signed vanguard adjustment. The catalog writes it either as
// a string ("+2", "-1") or as a bare number; Text keeps what was written.
type Modifier struct {
	Text  string
	Value int
}

// UnmarshalJSON accepts both string and numeric modifiers
func (m *Modifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	raw = strings.TrimSpace(raw)

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid modifier %q: %w", raw, err)
	}
	m.Text = raw
	m.Value = v
	return nil
}

func (m Modifier) String() string {
	if m.Text != "" {
		return m.Text
	}
	return strconv.Itoa(m.Value)
}
