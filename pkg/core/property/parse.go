package property

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Parse decodes a property record from feed bytes, tolerating the usual
// feed damage. Tiers, strictest first:
//
//  1. Standard JSON.
//  2. json-repair for truncated payloads, trailing commas, unquoted keys.
//  3. Hjson for human-edited records (comments, optional commas).
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err == nil {
		return &d, nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(raw)); err == nil {
		d = Data{}
		if err := json.Unmarshal([]byte(repaired), &d); err == nil {
			return &d, nil
		}
	}

	d = Data{}
	if err := hjson.Unmarshal(raw, &d); err == nil {
		return &d, nil
	}

	return nil, fmt.Errorf("property: all parse tiers failed for %d-byte input", len(raw))
}
