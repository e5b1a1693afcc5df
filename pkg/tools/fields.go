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

func fieldTools(client *affinity.Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_fields",
				Description: "Get custom field definitions, optionally filtered by list.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Fields", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"list_id": map[string]any{
							"type":        "integer",
							"description": "Only return fields attached to this list",
						},
						"value_type": map[string]any{
							"type":        "integer",
							"description": "Only return fields with this value type",
						},
						"entity_type": map[string]any{
							"type":        "integer",
							"description": "Only return fields for this entity type",
						},
					},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetFields),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_get_field_values",
				Description: "Get field values for a person, organization, opportunity, or list entry. Provide exactly one of the ID parameters.",
				Annotations: &mcp.ToolAnnotations{Title: "Get Field Values", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"person_id": map[string]any{
							"type":        "integer",
							"description": "Return field values on this person",
						},
						"organization_id": map[string]any{
							"type":        "integer",
							"description": "Return field values on this organization",
						},
						"opportunity_id": map[string]any{
							"type":        "integer",
							"description": "Return field values on this opportunity",
						},
						"list_entry_id": map[string]any{
							"type":        "integer",
							"description": "Return field values on this list entry",
						},
					},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeGetFieldValues),
		},
		{
			Tool: mcp.Tool{
				Name:        "affinity_set_field_value",
				Description: "Set a custom field value on an entity: updates the existing value if one exists for the field, otherwise creates a new one.",
				Annotations: &mcp.ToolAnnotations{Title: "Set Field Value", DestructiveHint: ptr.Ptr(false)},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the field",
						},
						"entity_id": map[string]any{
							"type":        "integer",
							"description": "The ID of the entity the value is set on",
						},
						"value": map[string]any{
							"description": "The value to set; type depends on the field definition",
						},
						"entity_type": map[string]any{
							"type":        "string",
							"enum":        []string{"person", "organization", "opportunity"},
							"description": "Kind of entity entity_id refers to",
							"default":     "organization",
						},
						"list_entry_id": map[string]any{
							"type":        "integer",
							"description": "Scope the value to a specific list entry",
						},
					},
					"required":             []string{"field_id", "entity_id", "value"},
					"additionalProperties": false,
				},
			},
			Execute: bind(client, executeSetFieldValue),
		},
	}
}

func executeGetFields(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	query := url.Values{}
	if listID, _ := ReadInt64(args, "list_id", false); listID > 0 {
		query.Set("list_id", strconv.FormatInt(listID, 10))
	}
	if valueType, _ := ReadInt64(args, "value_type", false); valueType > 0 {
		query.Set("value_type", strconv.FormatInt(valueType, 10))
	}
	if entityType, _ := ReadInt64(args, "entity_type", false); entityType > 0 {
		query.Set("entity_type", strconv.FormatInt(entityType, 10))
	}

	raw, err := client.Get(ctx, affinity.FieldsPath(), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

func executeGetFieldValues(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	query := url.Values{}
	provided := 0
	for _, key := range []string{"person_id", "organization_id", "opportunity_id", "list_entry_id"} {
		if id, _ := ReadInt64(args, key, false); id > 0 {
			query.Set(key, strconv.FormatInt(id, 10))
			provided++
		}
	}
	if provided != 1 {
		return nil, InvalidArguments("provide exactly one of person_id, organization_id, opportunity_id, or list_entry_id")
	}

	raw, err := client.Get(ctx, affinity.FieldValuesPath(), query)
	if err != nil {
		return nil, err
	}
	return RawResult(raw), nil
}

// executeSetFieldValue is the upsert: look up existing values, update the one
// matching the field if present, otherwise create. A failed lookup falls
// through to creation instead of surfacing the error.
func executeSetFieldValue(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error) {
	fieldID, err := ReadInt64(args, "field_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}
	entityID, err := ReadInt64(args, "entity_id", true)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}
	value := args["value"]
	entityType := ReadStringDefault(args, "entity_type", "organization")
	listEntryID, _ := ReadInt64(args, "list_entry_id", false)

	query := url.Values{}
	if listEntryID > 0 {
		query.Set("list_entry_id", strconv.FormatInt(listEntryID, 10))
	} else {
		query.Set(entityQueryKey(entityType), strconv.FormatInt(entityID, 10))
	}

	if raw, lookupErr := client.Get(ctx, affinity.FieldValuesPath(), query); lookupErr == nil {
		var existing []struct {
			ID      int64 `json:"id"`
			FieldID int64 `json:"field_id"`
		}
		if err := json.Unmarshal(raw, &existing); err == nil {
			for _, fv := range existing {
				if fv.FieldID != fieldID {
					continue
				}
				updated, err := client.Put(ctx, affinity.FieldValuePath(fv.ID), map[string]any{"value": value})
				if err != nil {
					return nil, err
				}
				var resp struct {
					ID int64 `json:"id"`
				}
				if err := json.Unmarshal(updated, &resp); err != nil || resp.ID == 0 {
					resp.ID = fv.ID
				}
				return TextResultf("Field value updated (ID: %d)", resp.ID), nil
			}
		}
	}

	// No existing value for this field, or the lookup itself failed:
	// attempt creation rather than surfacing the lookup error.
	body := map[string]any{
		"field_id":  fieldID,
		"entity_id": entityID,
		"value":     value,
	}
	if listEntryID > 0 {
		body["list_entry_id"] = listEntryID
	}

	created, err := client.Post(ctx, affinity.FieldValuesPath(), body)
	if err != nil {
		return nil, err
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(created, &resp); err != nil {
		return RawResult(created), nil
	}
	return TextResultf("Field value created (ID: %d)", resp.ID), nil
}

// entityQueryKey picks the lookup query parameter matching the entity kind.
// The original server always filtered by organization_id here regardless of
// kind; entity_type makes the lookup land on the right entity.
func entityQueryKey(entityType string) string {
	switch entityType {
	case "person":
		return "person_id"
	case "opportunity":
		return "opportunity_id"
	default:
		return "organization_id"
	}
}
