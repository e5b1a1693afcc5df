package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mau.fi/util/ptr"

	"github.com/beeper/affinity-mcp/pkg/affinity"
)

func listTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_lists",
				Description: "Get all lists in Affinity.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Lists", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type":                 "object",
					"properties":           map[string]any{},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetLists),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_list",
				Description: "Get a specific list by ID, including its field definitions.",
				Annotations: &mcp.ToolAnnotations{Title: "Get List", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"list_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the list",
						},
					},
					"required":             []string{"list_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetList),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_list_entries",
				Description: "Get entries on a list. Each entry links an entity to the list and has its own entry ID.",
				Annotations: &mcp.ToolAnnotations{Title: "Get List Entries", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"list_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the list",
						},
						"page_size": map[string]any{
							"type":        "integer",
							"description": "Number of results per page",
							"default":     defaultPageSize,
						},
						"page_token": map[string]any{
							"type":        "string",
							"description": "Token from a previous response to fetch the next page",
						},
					},
					"required":             []string{"list_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetListEntries),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_add_to_list",
				Description: "Add an entity (person, organization, or opportunity) to a list.",
				Annotations: &mcp.ToolAnnotations{Title: "Add to List", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"list_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the list",
						},
						"entity_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the entity to add",
						},
					},
					"required":             []string{"list_id", "entity_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeAddToList),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_remove_from_list",
				Description: "Remove an entry from a list. This deletes the list entry, not the underlying entity.",
				Annotations: &mcp.ToolAnnotations{Title: "Remove from List", DestructiveHint: ptr.Ptr(true)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"list_entry_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the list entry to remove",
						},
					},
					"required":             []string{"list_entry_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeRemoveFromList),
		},
	}
}

func executeGetLists(ctx context.Context, client *affinity.Client, _ map[string]any) (*Result, error) {
	raw, err := client.Get(ctx, affinity.ListsPath(), nil)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeGetList(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	listID, err := ReadInt64(args, "list_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	raw, err := client.Get(ctx, affinity.ListPath(listID), nil)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeGetListEntries(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	listID, err := ReadInt64(args, "list_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	query := url.Values{}
	query.Set("page_size", strconv.FormatInt(ReadInt64Default(args, "page_size", defaultPageSize), 10))
	if token, _ := ReadString(args, "page_token", false); token != "" {
		query.Set("page_token", token)
	}

	raw, err := client.Get(ctx, affinity.ListEntriesPath(listID), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeAddToList(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	listID, err := ReadInt64(args, "list_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}
	entityID, err := ReadInt64(args, "entity_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	raw, err := client.Post(ctx, affinity.ListEntriesPath(listID), map[string]any{"entity_id": entityID})
	if err != nil {
		return nil, err
	}

	var entry struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Added to list successfully (List Entry ID: %d)", entry.ID), nil
}

func executeRemoveFromList(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	entryID, err := ReadInt64(args, "list_entry_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	if _, err := client.Delete(ctx, affinity.ListEntryPath(entryID)); err != nil {
		return nil, err
	}
	return TextResult("Removed from list successfully"), nil
}
