package tools

import (
	"context"

	"github.com/beeper/affinity-mcp/pkg/affinity"
)

// Catalog returns the full set of Affinity tools bound to the given client.
// The catalog is static: twenty operations covering persons, organizations,
// opportunities, notes, list membership, and custom field values.
func Catalog(client *affinity.Client) []*Tool {
	var catalog []*Tool
	catalog = append(catalog, personTools(client)...)
	catalog = append(catalog, organizationTools(client)...)
	catalog = append(catalog, opportunityTools(client)...)
	catalog = append(catalog, noteTools(client)...)
	catalog = append(catalog, listTools(client)...)
	catalog = append(catalog, fieldTools(client)...)
	return catalog
}

// BuildRegistry registers the full catalog into a fresh registry.
// A duplicate name is a catalog bug and fails startup.
func BuildRegistry(client *affinity.Client) (*Registry, error) {
	registry := NewRegistry()
	for _, tool := range Catalog(client) {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

type handlerFunc func(ctx context.Context, client *affinity.Client, args map[string]any) (*Result, error)

// bind closes a handler over the API client so tool descriptors stay static
// while the client is an explicit per-process dependency.
func bind(client *affinity.Client, fn handlerFunc) func(context.Context, map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		return fn(ctx, client, args)
	}
}
