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

func opportunityTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_search_opportunities",
				Description: "Search for opportunities in Affinity by name.",
				Annotations: &mcp.ToolAnnotations{Title: "Search Opportunities", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "Search term matched against opportunity names",
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
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeSearchOpportunities),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_create_opportunity",
				Description: "Create a new opportunity in Affinity on a specific list.",
				Annotations: &mcp.ToolAnnotations{Title: "Create Opportunity", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Name of the opportunity",
						},
						"list_id": map[string]any{
							"type":        "integer",
							"description": "ID of the opportunity list to create the opportunity on",
						},
						"person_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "IDs of persons associated with the opportunity",
						},
						"organization_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "IDs of organizations associated with the opportunity",
						},
					},
					"required":             []string{"name", "list_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeCreateOpportunity),
		},
	}
}

func executeSearchOpportunities(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	query := url.Values{}
	if term, _ := ReadString(args, "term", false); term != "" {
		query.Set("term", term)
	}
	query.Set("page_size", strconv.FormatInt(ReadInt64Default(args, "page_size", defaultPageSize), 10))
	if token, _ := ReadString(args, "page_token", false); token != "" {
		query.Set("page_token", token)
	}

	raw, err := client.Get(ctx, affinity.OpportunitiesPath(), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeCreateOpportunity(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	name, _ := ReadString(args, "name", true)
	listID, err := ReadInt64(args, "list_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	body := map[string]any{
		"name":    name,
		"list_id": listID,
	}
	if personIDs := ReadInt64Slice(args, "person_ids"); len(personIDs) > 0 {
		body["person_ids"] = personIDs
	}
	if orgIDs := ReadInt64Slice(args, "organization_ids"); len(orgIDs) > 0 {
		body["organization_ids"] = orgIDs
	}

	raw, err := client.Post(ctx, affinity.OpportunitiesPath(), body)
	if err != nil {
		return nil, err
	}

	var opportunity struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &opportunity); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Opportunity created: %s (ID: %d)", opportunity.Name, opportunity.ID), nil
}
