package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// baseFields are required on every record whatever its layout
var baseFields = []string{"name", "set", "collector_number", "rarity"}

// Decode parses a catalog JSON array and stops at the first record that
// fails schema or shape checks.
func Decode(data []byte) ([]Card, error) {
	var cards []Card
	err := Scan(bytes.NewReader(data), func(c Card) error {
		cards = append(cards, c)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// DecodeLenient parses a catalog JSON array, skipping records that fail
// schema or shape checks. The skipped records' errors are returned in input
// order. A catalog that is not valid JSON still fails as a whole.
func DecodeLenient(data []byte) ([]Card, []error, error) {
	var cards []Card
	var skipped []error
	err := Scan(bytes.NewReader(data), func(c Card) error {
		cards = append(cards, c)
		return nil
	}, func(err error) error {
		skipped = append(skipped, err)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return cards, skipped, nil
}

// Scan streams the elements of a catalog JSON array from r, calling fn for
// every record that decodes. Record-level errors (SchemaError, ShapeError)
// go to onErr; a nil onErr, or onErr returning non-nil, aborts the scan.
func Scan(r io.Reader, fn func(Card) error, onErr func(error) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("error reading catalog: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return errors.New("catalog must be a JSON array of cards")
	}

	for i := 0; dec.More(); i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("error reading record %d: %w", i, err)
		}

		c, err := decodeRecord(i, raw)
		if err != nil {
			if onErr == nil {
				return err
			}
			if err := onErr(err); err != nil {
				return err
			}
			continue
		}

		if err := fn(c); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("error reading end of catalog: %w", err)
	}
	return nil
}

// decodeRecord resolves one element's variant from its layout, checks the
// variant's required fields, then decodes it into the variant type.
func decodeRecord(index int, raw json.RawMessage) (Card, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &ShapeError{Index: index, Reason: "record is not a JSON object", Err: err}
	}

	name := stringField(fields, "name")

	layoutText := stringField(fields, "layout")
	if layoutText == "" {
		return nil, &SchemaError{Index: index, Name: name}
	}
	layout, ok := ParseLayout(layoutText)
	if !ok {
		return nil, &SchemaError{Index: index, Name: name, Layout: layoutText}
	}
	sh := shapes[layout]

	for _, group := range [][]string{baseFields, sh.required} {
		for _, f := range group {
			if !present(fields, f) {
				return nil, &ShapeError{Index: index, Name: name, Layout: layout, Field: f, Reason: "missing required field"}
			}
		}
	}

	// unplayable records keep only the base fields, so their nested data
	// is not checked
	if Playable(layout) {
		if se := checkNested(fields, sh); se != nil {
			se.Index, se.Name, se.Layout = index, name, layout
			return nil, se
		}
	}

	c := sh.new()
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, &ShapeError{Index: index, Name: name, Layout: layout, Reason: "invalid field value", Err: err}
	}
	c.Common().Layout = layout

	return c, nil
}

// checkNested validates the image_uris object and every card_faces entry.
// The returned error has no record position yet.
func checkNested(fields map[string]json.RawMessage, sh shape) *ShapeError {
	if present(fields, "image_uris") {
		if se := checkImages(fields["image_uris"], "image_uris"); se != nil {
			return se
		}
	}
	if !present(fields, "card_faces") {
		return nil
	}

	var faces []json.RawMessage
	if err := json.Unmarshal(fields["card_faces"], &faces); err != nil {
		return &ShapeError{Field: "card_faces", Reason: "not a list", Err: err}
	}
	switch {
	case sh.faces > 0 && len(faces) != sh.faces:
		return &ShapeError{Field: "card_faces", Reason: fmt.Sprintf("expected %d faces, found %d", sh.faces, len(faces))}
	case len(faces) < sh.minFaces:
		return &ShapeError{Field: "card_faces", Reason: fmt.Sprintf("expected at least %d faces, found %d", sh.minFaces, len(faces))}
	}

	for i, raw := range faces {
		field := fmt.Sprintf("card_faces[%d]", i)
		face, ok := object(raw)
		if !ok {
			return &ShapeError{Field: field, Reason: "face is not an object"}
		}
		for _, f := range faceFields {
			if !present(face, f) {
				return &ShapeError{Field: field + "." + f, Reason: "missing required field"}
			}
		}
		if present(face, "image_uris") {
			if se := checkImages(face["image_uris"], field+".image_uris"); se != nil {
				return se
			}
		}
	}
	return nil
}

// checkImages requires every image link of an image_uris object
func checkImages(raw json.RawMessage, field string) *ShapeError {
	images, ok := object(raw)
	if !ok {
		return &ShapeError{Field: field, Reason: "not an object"}
	}
	for _, f := range imageFields {
		if !present(images, f) {
			return &ShapeError{Field: field + "." + f, Reason: "missing required field"}
		}
	}
	return nil
}

// object decodes raw as a JSON object; null and non-objects report false
func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// present reports whether a field exists and is not null
func present(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// stringField returns a string field, or "" when absent or not a string
func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if v, ok := fields[key]; ok {
		_ = json.Unmarshal(v, &s)
	}
	return s
}
