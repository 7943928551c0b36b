//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	reqdto "ramillete/internal/handler/dto/request"
)

// unmarshalInto decodes a mutated request map the way gin's JSON binding
// would, surfacing the same *json.UnmarshalTypeError values.
func unmarshalInto(t *testing.T, m map[string]any) error {
	t.Helper()
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("failed to marshal request map: %v", err)
	}
	var req reqdto.CreateOfferingRequest
	return json.Unmarshal(raw, &req)
}

func unmarshalRaw(t *testing.T, raw string) error {
	t.Helper()
	var req reqdto.CreateOfferingRequest
	return json.Unmarshal([]byte(raw), &req)
}
