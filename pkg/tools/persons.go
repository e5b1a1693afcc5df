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

const defaultPageSize = 20

func personTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_search_persons",
				Description: "Search for persons in Affinity by name or email address.",
				Annotations: &mcp.ToolAnnotations{Title: "Search Persons", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "Search term matched against person names and email addresses",
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
			Execute: bind(client, executeSearchPersons),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_person",
				Description: "Get a specific person by ID, including their field values.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Person", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"person_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the person",
						},
					},
					"required":             []string{"person_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetPerson),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_create_person",
				Description: "Create a new person in Affinity.",
				Annotations: &mcp.ToolAnnotations{Title: "Create Person", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"first_name": map[string]any{
							"type":        "string",
							"description": "First name of the person",
						},
						"last_name": map[string]any{
							"type":        "string",
							"description": "Last name of the person",
						},
						"emails": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Email addresses of the person",
						},
						"organization_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "IDs of organizations the person belongs to",
						},
					},
					"required":             []string{"first_name", "last_name"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeCreatePerson),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_update_person",
				Description: "Update an existing person in Affinity.",
				Annotations: &mcp.ToolAnnotations{Title: "Update Person", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"person_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the person to update",
						},
						"first_name": map[string]any{
							"type":        "string",
							"description": "New first name",
						},
						"last_name": map[string]any{
							"type":        "string",
							"description": "New last name",
						},
						"emails": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Replacement email addresses",
						},
						"organization_ids": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "Replacement organization IDs",
						},
					},
					"required":             []string{"person_id"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeUpdatePerson),
		},
	}
}

func executeSearchPersons(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	query := url.Values{}
	if term, _ := ReadString(args, "term", false); term != "" {
		query.Set("term", term)
	}
	query.Set("page_size", strconv.FormatInt(ReadInt64Default(args, "page_size", defaultPageSize), 10))
	if token, _ := ReadString(args, "page_token", false); token != "" {
		query.Set("page_token", token)
	}

	raw, err := client.Get(ctx, affinity.PersonsPath(), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeGetPerson(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	personID, err := ReadInt64(args, "person_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	raw, err := client.Get(ctx, affinity.PersonPath(personID), nil)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeCreatePerson(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	firstName, _ := ReadString(args, "first_name", true)
	lastName, _ := ReadString(args, "last_name", true)

	body := map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
	}
	if emails := ReadStringSlice(args, "emails"); len(emails) > 0 {
		body["emails"] = emails
	}
	if orgIDs := ReadInt64Slice(args, "organization_ids"); len(orgIDs) > 0 {
		body["organization_ids"] = orgIDs
	}

	raw, err := client.Post(ctx, affinity.PersonsPath(), body)
	if err != nil {
		return nil, err
	}

	var person struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.Unmarshal(raw, &person); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Person created: %s %s (ID: %d)", person.FirstName, person.LastName, person.ID), nil
}

func executeUpdatePerson(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	personID, err := ReadInt64(args, "person_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	body := map[string]any{}
	if firstName, _ := ReadString(args, "first_name", false); firstName != "" {
		body["first_name"] = firstName
	}
	if lastName, _ := ReadString(args, "last_name", false); lastName != "" {
		body["last_name"] = lastName
	}
	if emails := ReadStringSlice(args, "emails"); len(emails) > 0 {
		body["emails"] = emails
	}
	if orgIDs := ReadInt64Slice(args, "organization_ids"); len(orgIDs) > 0 {
		body["organization_ids"] = orgIDs
	}

	raw, err := client.Put(ctx, affinity.PersonPath(personID), body)
	if err != nil {
		return nil, err
	}

	var person struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.Unmarshal(raw, &person); err != nil {
		return RawResult(raw), nil
	}
	return TextResultf("Person updated: %s %s (ID: %d)", person.FirstName, person.LastName, person.ID), nil
}
