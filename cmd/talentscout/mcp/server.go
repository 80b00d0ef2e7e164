package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/neilberkman/talentscout/internal/core/interview"
	"github.com/neilberkman/talentscout/internal/core/models"
)

// SessionArgs defines arguments for tools that address one interview
type SessionArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Interview session ID returned by start_interview,required"`
}

// SendMessageArgs defines arguments for the send_message tool
type SendMessageArgs struct {
	SessionID string `json:"session_id" jsonschema:"description=Interview session ID returned by start_interview,required"`
	Message   string `json:"message" jsonschema:"description=The candidate's reply,required"`
}

// TurnResult is returned by start_interview and send_message
type TurnResult struct {
	SessionID string          `json:"session_id"`
	Replies   []string        `json:"replies"`
	Progress  models.Snapshot `json:"progress"`
	Finished  bool            `json:"finished"`
}

// TranscriptEntry is one line of an interview transcript
type TranscriptEntry struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type toolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// NewServer builds the MCP server with the interview tools registered
func NewServer(registry *interview.Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"TalentScout",
		version,
	)

	startTool := mcp.NewTool("start_interview",
		mcp.WithDescription("Start a new candidate screening interview. Returns the session ID and the opening greeting. Relay replies to the candidate verbatim."),
	)
	s.AddTool(startTool, makeStartInterviewHandler(registry))

	sendTool := mcp.NewTool("send_message",
		mcp.WithDescription("Send the candidate's next reply to an interview and get the assistant's responses. Replies 'exit', 'quit', 'bye', 'stop' or 'end' end the interview."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Interview session ID returned by start_interview")),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The candidate's reply")),
	)
	s.AddTool(sendTool, makeSendMessageHandler(registry))

	progressTool := mcp.NewTool("get_progress",
		mcp.WithDescription("Get the current phase, details collected and questions answered for an interview"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Interview session ID")),
	)
	s.AddTool(progressTool, makeGetProgressHandler(registry))

	transcriptTool := mcp.NewTool("get_transcript",
		mcp.WithDescription("Get the full transcript of an interview"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Interview session ID")),
	)
	s.AddTool(transcriptTool, makeGetTranscriptHandler(registry))

	endTool := mcp.NewTool("end_interview",
		mcp.WithDescription("Discard an interview session and free its memory"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Interview session ID")),
	)
	s.AddTool(endTool, makeEndInterviewHandler(registry))

	return s
}

// StartServer serves the interview tools over stdio until the client disconnects
func StartServer(registry *interview.Registry, version string) error {
	return server.ServeStdio(NewServer(registry, version))
}

func decodeArgs(request mcp.CallToolRequest, v interface{}) error {
	argsBytes, _ := json.Marshal(request.Params.Arguments)
	return json.Unmarshal(argsBytes, v)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func sessionError(err error) *mcp.CallToolResult {
	if errors.Is(err, interview.ErrSessionNotFound) {
		return mcp.NewToolResultError("unknown session_id: start a new interview with start_interview")
	}
	return mcp.NewToolResultError(err.Error())
}

func texts(msgs []models.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func makeStartInterviewHandler(registry *interview.Registry) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, greeting := registry.Create()

		snapshot, _, err := registry.Get(id)
		if err != nil {
			return sessionError(err), nil
		}

		return jsonResult(TurnResult{
			SessionID: id,
			Replies:   texts(greeting),
			Progress:  snapshot,
		})
	}
}

func makeSendMessageHandler(registry *interview.Registry) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SendMessageArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.SessionID == "" {
			return mcp.NewToolResultError("session_id is required"), nil
		}

		replies, snapshot, err := registry.Send(ctx, args.SessionID, args.Message)
		if err != nil {
			return sessionError(err), nil
		}

		return jsonResult(TurnResult{
			SessionID: args.SessionID,
			Replies:   texts(replies),
			Progress:  snapshot,
			Finished:  snapshot.Phase == models.PhaseFinished,
		})
	}
}

func makeGetProgressHandler(registry *interview.Registry) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SessionArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		snapshot, _, err := registry.Get(args.SessionID)
		if err != nil {
			return sessionError(err), nil
		}
		return jsonResult(snapshot)
	}
}

func makeGetTranscriptHandler(registry *interview.Registry) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SessionArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		_, transcript, err := registry.Get(args.SessionID)
		if err != nil {
			return sessionError(err), nil
		}

		entries := make([]TranscriptEntry, 0, len(transcript))
		for _, m := range transcript {
			entries = append(entries, TranscriptEntry{
				Speaker:   string(m.Speaker),
				Text:      m.Text,
				Timestamp: m.At.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		return jsonResult(map[string]interface{}{
			"session_id": args.SessionID,
			"messages":   entries,
		})
	}
}

func makeEndInterviewHandler(registry *interview.Registry) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SessionArgs
		if err := decodeArgs(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		if err := registry.Remove(args.SessionID); err != nil {
			return sessionError(err), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("interview %s ended", args.SessionID)), nil
	}
}
