package dateutils

import "encoding/json"

// MarshalCSV renders the RawDate for CSV export as it appeared in the source.
func (d RawDate) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV reclassifies a CSV cell into a RawDate.
func (d *RawDate) UnmarshalCSV(s string) error {
	*d = RawDateFromString(s)
	return nil
}

// MarshalJSON renders the RawDate as its source string, or null when empty.
func (d RawDate) MarshalJSON() ([]byte, error) {
	if d.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON reclassifies a JSON string (or null) into a RawDate.
func (d *RawDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = RawDate{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = RawDateFromString(s)
	return nil
}
