package payoff

import (
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantJSON   string
		wantReason string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, ""},
		{"surrounded by prose", "Sure! Here you go:\n{\"a\": 1}\nLet me know.", `{"a": 1}`, ""},
		{"code fence", "```json\n{\"a\": {\"b\": [1, 2]}}\n```", `{"a": {"b": [1, 2]}}`, ""},
		{"braces in strings", `note {"msg": "use } and { freely", "n": 2} end`, `{"msg": "use } and { freely", "n": 2}`, ""},
		{"escaped quote", `{"msg": "say \"}\" loudly"}`, `{"msg": "say \"}\" loudly"}`, ""},
		{"invalid then valid", `{not json} then {"ok": true}`, `{"ok": true}`, ""},
		{"unbalanced then valid", `{"broken": {"ok": true}`, `{"ok": true}`, ""},
		{"empty", "   ", "", "empty response"},
		{"no braces", "I cannot help with that.", "", "no JSON object found"},
		{"unbalanced", `{"a": 1`, "", "unbalanced braces"},
		{"invalid", `{a: 1}`, "", "invalid JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSONObject(tt.text)
			if tt.wantJSON == "" {
				if got.Found {
					t.Fatalf("expected nothing, got %s", got.JSON)
				}
				if got.Reason != tt.wantReason {
					t.Errorf("expected reason %q, got %q", tt.wantReason, got.Reason)
				}
				return
			}
			if !got.Found {
				t.Fatalf("expected object, got reason %q", got.Reason)
			}
			if string(got.JSON) != tt.wantJSON {
				t.Errorf("expected %s, got %s", tt.wantJSON, got.JSON)
			}
		})
	}
}

func TestExtractionDecode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if !ExtractJSONObject(`reply: {"name": "plan"}`).Decode(&v) || v.Name != "plan" {
		t.Errorf("expected decoded name, got %+v", v)
	}

	if ExtractJSONObject(`{"name": 42}`).Decode(&v) {
		t.Error("expected decode to fail on wrong shape")
	}
	if ExtractJSONObject("nothing").Decode(&v) {
		t.Error("expected decode to fail without an object")
	}
}
