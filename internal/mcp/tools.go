package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daydayup/internal/query"
	"github.com/gorewood/daydayup/internal/session"
)

// sourceRequest marks settings overridden by tool arguments.
const sourceRequest = "request"

// --- Query tool ---

// QueryInput is the input for the query tool.
type QueryInput struct {
	Input    string `json:"input,omitempty"    jsonschema:"query text; empty for today's facts"`
	At       string `json:"at,omitempty"       jsonschema:"reference time used instead of now"`
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA zone name such as Asia/Shanghai"`
	Locale   string `json:"locale,omitempty"   jsonschema:"catalog name such as en or zh"`
	ISOWeek  bool   `json:"iso_week,omitempty" jsonschema:"number weeks by ISO 8601 instead of Sunday-start"`
}

// QueryOutput is the output for the query tool.
type QueryOutput struct {
	Input    string       `json:"input"              jsonschema:"the query text"`
	Mode     string       `json:"mode"               jsonschema:"default, time, iso-duration or number-duration"`
	Items    []query.Item `json:"items"              jsonschema:"result items in display order"`
	Warnings []string     `json:"warnings,omitempty" jsonschema:"explanations for degenerate items"`
}

func handleQuery(env Env) mcp.ToolHandlerFor[QueryInput, QueryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		opts := session.Options{
			Locale:   input.Locale,
			Timezone: input.Timezone,
			ISOWeek:  input.ISOWeek,
		}
		settings := opts.Apply(env.Settings, sourceRequest)

		builder, err := session.NewBuilder(settings, env.ConfigDir, input.At)
		if err != nil {
			return nil, QueryOutput{}, fmt.Errorf("preparing query: %w", err)
		}
		if input.At == "" && env.Now != nil {
			builder.Now = env.Now
		}

		result := builder.Query(input.Input)
		return nil, QueryOutput{
			Input:    result.Input,
			Mode:     string(result.Mode),
			Items:    result.Items,
			Warnings: result.Warnings,
		}, nil
	}
}

// --- Classify tool ---

// ClassifyInput is the input for the classify tool.
type ClassifyInput struct {
	Input string `json:"input,omitempty" jsonschema:"query text to classify"`
}

// ClassifyOutput is the output for the classify tool.
type ClassifyOutput struct {
	Input string `json:"input"               jsonschema:"the query text"`
	Mode  string `json:"mode"                jsonschema:"default, time, iso-duration or number-duration"`
	ISO   string `json:"iso,omitempty"       jsonschema:"the ISO 8601 duration tested, for iso-duration mode"`
}

func handleClassify() mcp.ToolHandlerFor[ClassifyInput, ClassifyOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, ClassifyOutput, error) {
		mode := query.Classify(input.Input)
		out := ClassifyOutput{Input: input.Input, Mode: string(mode)}
		if mode == query.ModeISODuration {
			out.ISO = query.ISOCandidate(input.Input)
		}
		return nil, out, nil
	}
}
