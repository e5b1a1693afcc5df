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

func organizationTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_search_organizations",
				Description: "Search for organizations in Affinity by name or domain.",
				Annotations: &mcp.ToolAnnotations{Title: "Search Organizations", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "Search term matched against organization names and domains",
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
			Execute: bind(client, executeSearchOrganizations),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_organization",
				Description: "Get a specific organization by ID, including its field values.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Organization", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"organization_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the organization",
						},
					},
					"required":             []string{"organization_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetOrganization),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_create_organization",
				Description: "Create a new organization in Affinity.",
				Annotations: &mcp.ToolAnnotations{Title: "Create Organization", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Name of the organization",
						},
						"domain": map[string]any{
							"type":        "string",
							"description": "Website domain of the organization",
						},
						"person_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "IDs of persons associated with the organization",
						},
					},
					"required":             []string{"name"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeCreateOrganization),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_update_organization",
				Description: "Update an existing organization in Affinity.",
				Annotations: &mcp.ToolAnnotations{Title: "Update Organization", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"organization_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the organization to update",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "New name",
						},
						"domain": map[string]any{
							"type":        "string",
							"description": "New website domain",
						},
						"person_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "Replacement person IDs",
						},
					},
					"required":             []string{"organization_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeUpdateOrganization),
		},
	}
}

func executeSearchOrganizations(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	query := url.Values{}
	if term, _ := ReadString(args, "term", false); term != "" {
		query.Set("term", term)
	}
	query.Set("page_size", strconv.FormatInt(ReadInt64Default(args, "page_size", defaultPageSize), 10))
	if token, _ := ReadString(args, "page_token", false); token != "" {
		query.Set("page_token", token)
	}

	raw, err := client.Get(ctx, affinity.OrganizationsPath(), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeGetOrganization(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	orgID, err := ReadInt64(args, "organization_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	raw, err := client.Get(ctx, affinity.OrganizationPath(orgID), nil)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeCreateOrganization(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	name, _ := ReadString(args, "name", true)

	body := map[string]any{"name": name}
	if domain, _ := ReadString(args, "domain", false); domain != "" {
		body["domain"] = domain
	}
	if personIDs := ReadInt64Slice(args, "person_ids"); len(personIDs) > 0 {
		body["person_ids"] = personIDs
	}

	raw, err := client.Post(ctx, affinity.OrganizationsPath(), body)
	if err != nil {
		return nil, err
	}

	var org struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &org); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Organization created: %s (ID: %d)", org.Name, org.ID), nil
}

func executeUpdateOrganization(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	orgID, err := ReadInt64(args, "organization_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	body := map[string]any{}
	if name, _ := ReadString(args, "name", false); name != "" {
		body["name"] = name
	}
	if domain, _ := ReadString(args, "domain", false); domain != "" {
		body["domain"] = domain
	}
	if personIDs := ReadInt64Slice(args, "person_ids"); len(personIDs) > 0 {
		body["person_ids"] = personIDs
	}

	raw, err := client.Put(ctx, affinity.OrganizationPath(orgID), body)
	if err != nil {
		return nil, err
	}

	var org struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &org); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Organization updated: %s (ID: %d)", org.Name, org.ID), nil
}
