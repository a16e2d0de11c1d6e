package ai

import (
	"testing"

	"hudumahub/models"

	genai "github.com/google/generative-ai-go/genai"
)

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("hello "), genai.Text("world")}},
		}},
	}
	got, err := responseText(resp)
	if err != nil {
		t.Fatalf("responseText failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("text = %q, want %q", got, "hello world")
	}
}

func TestResponseTextNoCandidates(t *testing.T) {
	// A blocked prompt yields a response with zero candidates.
	if _, err := responseText(&genai.GenerateContentResponse{}); err == nil {
		t.Fatal("empty response should be an error")
	}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	if _, err := responseText(resp); err == nil {
		t.Fatal("candidate without content should be an error")
	}
}

func TestParseDecision(t *testing.T) {
	d, err := parseDecision("```json\n{\"action\":\"accept\",\"reason\":\"fits the schedule\"}\n```")
	if err != nil {
		t.Fatalf("parseDecision failed: %v", err)
	}
	if d.Action != models.DecisionAccept || d.Reason == "" {
		t.Errorf("decision = %+v, want accept with reason", d)
	}

	if _, err := parseDecision(`{"action":"maybe","reason":"?"}`); err == nil {
		t.Fatal("unknown action should be rejected")
	}
	if _, err := parseDecision("not json"); err == nil {
		t.Fatal("malformed response should be rejected")
	}
}
