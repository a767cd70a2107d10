package model

import "encoding/json"

// URLList is the extraction_metadata.url field. Scrapers emit a single
// string; merging two leads with different source URLs produces a list.
// Both wire shapes are accepted and the single-element form marshals
// back to a bare string to preserve the upstream contract.
type URLList []string

// UnmarshalJSON accepts either a JSON string or an array of strings.
// Malformed input decodes to an empty list rather than failing the record.
func (u *URLList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*u = nil
		} else {
			*u = URLList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*u = URLList(many)
		return nil
	}

	*u = nil
	return nil
}

// MarshalJSON emits a bare string for a single URL and an array otherwise.
func (u URLList) MarshalJSON() ([]byte, error) {
	if len(u) == 1 {
		return json.Marshal(u[0])
	}
	return json.Marshal([]string(u))
}
