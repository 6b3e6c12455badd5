package tts

import (
	"encoding/json"
	"strconv"
)

// Record is the flat, layout-independent output for one card. Single-faced
// layouts fill the embedded Details; multi-faced layouts fill CardFaces.
type Record struct {
	OracleID        string  `json:"oracle_id"`
	CMC             float64 `json:"cmc"`
	TypeLine        string  `json:"type_line"`
	Set             string  `json:"set"`
	Name            string  `json:"name"`
	CollectorNumber string  `json:"collector_number"`
	Layout          string  `json:"layout"`

	*Details
	CardFaces []Face `json:"card_faces,omitempty"`
}

// Details are the per-face fields of a single-faced record
type Details struct {
	OracleText string `json:"oracle_text"`
	ImageURIs  Images `json:"image_uris"`
	Power      Stat   `json:"power"`
	Toughness  Stat   `json:"toughness"`
	ManaCost   string `json:"mana_cost"`
	Loyalty    Stat   `json:"loyalty"`
}

// Face is one entry of a multi-faced record's card_faces
type Face struct {
	Name       string `json:"name"`
	TypeLine   string `json:"type_line"`
	OracleText string `json:"oracle_text"`
	ImageURIs  Images `json:"image_uris"`
	Power      Stat   `json:"power"`
	Toughness  Stat   `json:"toughness"`
	ManaCost   string `json:"mana_cost"`
	Loyalty    Stat   `json:"loyalty"`
}

// Images are the image links the importer needs
type Images struct {
	Normal string `json:"normal"`
	Small  string `json:"small,omitempty"`
}

// Stat is a power, toughness or loyalty value. The catalog writes these as
// text ("3", "*", "1+*"); an absent stat is written as the number 0.
type Stat string

func (s Stat) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("0"), nil
	}
	return json.Marshal(string(s))
}

func (s *Stat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Stat(v)
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	if n == 0 {
		*s = ""
		return nil
	}
	*s = Stat(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}
