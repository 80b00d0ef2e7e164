package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
	"github.com/neilberkman/talentscout/internal/core/questions"
)

func newRegistry() *interview.Registry {
	gen := questions.GeneratorFunc(func(ctx context.Context, stack, exp string) ([]string, error) {
		return []string{"Explain channels."}, nil
	})
	return interview.NewRegistry(interview.New(gen))
}

func call(t *testing.T, h toolHandler, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", c)
	}
	return ""
}

func TestInterviewTools(t *testing.T) {
	registry := newRegistry()

	result := call(t, makeStartInterviewHandler(registry), nil)
	if result.IsError {
		t.Fatalf("start_interview failed: %s", resultText(t, result))
	}

	var start TurnResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &start); err != nil {
		t.Fatalf("invalid start result: %v", err)
	}
	if start.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if len(start.Replies) != 1 {
		t.Errorf("greeting replies = %d, want 1", len(start.Replies))
	}
	if start.Progress.Phase != models.PhaseGreeting {
		t.Errorf("phase = %s, want greeting", start.Progress.Phase)
	}

	send := makeSendMessageHandler(registry)
	for _, msg := range []string{"hi", "Jane Doe"} {
		result = call(t, send, map[string]interface{}{"session_id": start.SessionID, "message": msg})
		if result.IsError {
			t.Fatalf("send_message(%q) failed: %s", msg, resultText(t, result))
		}
	}

	var turn TurnResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &turn); err != nil {
		t.Fatalf("invalid send result: %v", err)
	}
	if turn.Progress.InfoIndex != 1 {
		t.Errorf("InfoIndex = %d, want 1", turn.Progress.InfoIndex)
	}
	if turn.Progress.Name != "Jane Doe" {
		t.Errorf("Name = %q", turn.Progress.Name)
	}
	if turn.Finished {
		t.Error("interview should not be finished")
	}

	result = call(t, makeGetProgressHandler(registry), map[string]interface{}{"session_id": start.SessionID})
	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(resultText(t, result)), &snapshot); err != nil {
		t.Fatalf("invalid progress result: %v", err)
	}
	if snapshot.Phase != models.PhaseCollectingInfo {
		t.Errorf("phase = %s, want collecting_info", snapshot.Phase)
	}

	result = call(t, makeGetTranscriptHandler(registry), map[string]interface{}{"session_id": start.SessionID})
	var transcript struct {
		Messages []TranscriptEntry `json:"messages"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &transcript); err != nil {
		t.Fatalf("invalid transcript result: %v", err)
	}
	// greeting, hi, name prompt, Jane Doe, email prompt
	if len(transcript.Messages) != 5 {
		t.Errorf("transcript len = %d, want 5", len(transcript.Messages))
	}
	if transcript.Messages[1].Speaker != "user" {
		t.Errorf("second message speaker = %q", transcript.Messages[1].Speaker)
	}

	result = call(t, send, map[string]interface{}{"session_id": start.SessionID, "message": "bye"})
	if err := json.Unmarshal([]byte(resultText(t, result)), &turn); err != nil {
		t.Fatal(err)
	}
	if !turn.Finished {
		t.Error("exit keyword should finish the interview")
	}

	result = call(t, makeEndInterviewHandler(registry), map[string]interface{}{"session_id": start.SessionID})
	if result.IsError {
		t.Errorf("end_interview failed: %s", resultText(t, result))
	}
	if registry.Len() != 0 {
		t.Errorf("registry len = %d after end", registry.Len())
	}
}

func TestUnknownSession(t *testing.T) {
	registry := newRegistry()

	handlers := map[string]toolHandler{
		"get_progress":   makeGetProgressHandler(registry),
		"get_transcript": makeGetTranscriptHandler(registry),
		"end_interview":  makeEndInterviewHandler(registry),
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			result := call(t, h, map[string]interface{}{"session_id": "nope"})
			if !result.IsError {
				t.Errorf("%s should fail for an unknown session", name)
			}
		})
	}

	result := call(t, makeSendMessageHandler(registry), map[string]interface{}{"message": "hi"})
	if !result.IsError {
		t.Error("send_message without session_id should fail")
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer(newRegistry(), "test"); s == nil {
		t.Fatal("NewServer returned nil")
	}
}
