package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mau.fi/util/ptr"

	"github.com/beeper/affinity-mcp/pkg/affinity"
)

func noteTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_create_note",
				Description: "Create a note attached to a person, organization, or opportunity.",
				Annotations: &mcp.ToolAnnotations{Title: "Create Note", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"parent_type": map[string]any{
							"type":        "string",
							"enum":        []string{"person", "organization", "opportunity"},
							"description": "Kind of entity the note is attached to",
						},
						"parent_id": map[string]any{
							"type":        "integer",
							"description": "ID of the entity the note is attached to",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "Text content of the note",
						},
					},
					"required":             []string{"parent_type", "parent_id", "content"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeCreateNote),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_note",
				Description: "Get a specific note by ID.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Note", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"note_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the note",
						},
					},
					"required":             []string{"note_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetNote),
		},
	}
}

func executeCreateNote(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	parentType, _ := ReadString(args, "parent_type", true)
	parentID, err := ReadInt64(args, "parent_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}
	content, _ := ReadString(args, "content", true)

	// parent_type maps to exactly one of the three association arrays,
	// containing only the parent ID.
	body := map[string]any{"content": content}
	switch parentType {
	case "person":
		body["person_ids"] = []int64{parentID}
	case "organization":
		body["organization_ids"] = []int64{parentID}
	case "opportunity":
		body["opportunity_ids"] = []int64{parentID}
	default:
		return nil, InvalidArguments("parameter %q must be one of [person organization opportunity]", "parent_type")
	}

	raw, err := client.Post(ctx, affinity.NotesPath(), body)
	if err != nil {
		return nil, err
	}

	var note struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &note); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Note created (ID: %d)", note.ID), nil
}

func executeGetNote(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	noteID, err := ReadInt64(args, "note_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	raw, err := client.Get(ctx, affinity.NotePath(noteID), nil)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}
