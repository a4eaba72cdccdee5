package utils

import (
	"encoding/json"
	"testing"
)

func TestNewResponse(t *testing.T) {
	res := NewResponse(map[string]string{"id": "1"}, "Created")
	if res.Error {
		t.Error("success response marked as error")
	}
	if res.Message != "Created" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestNewErrorResponse(t *testing.T) {
	res := NewErrorResponse("Server error", "boom")
	if !res.Error {
		t.Error("error response not marked as error")
	}
	if res.Data != "boom" {
		t.Errorf("data = %v", res.Data)
	}
}

func TestEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(NewErrorResponse("Route not found", nil))
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"data", "error", "message"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("envelope missing %q key: %s", key, raw)
		}
	}
	if decoded["data"] != nil {
		t.Errorf("data = %v, want null", decoded["data"])
	}
	if decoded["error"] != true {
		t.Errorf("error = %v, want true", decoded["error"])
	}
}
