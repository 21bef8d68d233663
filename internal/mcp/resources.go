// ABOUTME: MCP resource providers for hobbies
// ABOUTME: Exposes read-only views of each catalog and cross-catalog statistics

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/hobbies/internal/collection"
	"github.com/harper/hobbies/internal/query"
	"github.com/harper/hobbies/internal/timeutil"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Count       int    `json:"count"`
	ResourceURI string `json:"resource_uri"`
	Source      string `json:"source,omitempty"`
}

const statsURI = "hobbies://stats"

func catalogURI(name string) string {
	return "hobbies://" + name
}

func (s *Server) registerResources() {
	for _, cat := range s.state.Catalogs() {
		s.registerCatalogResource(cat)
	}
	s.registerStatsResource()
}

func (s *Server) registerCatalogResource(cat collection.Catalog) {
	uri := catalogURI(cat.Name())
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         uri,
			Name:        fmt.Sprintf("All %s", cat.Name()),
			Description: fmt.Sprintf("Every entry in the %s catalog in stored order, with status, rating, and notes", cat.Name()),
			MIMEType:    "application/json",
		},
		s.catalogResourceHandler(cat),
	)
}

func (s *Server) registerStatsResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         statsURI,
			Name:        "Hobby Statistics",
			Description: "Per-catalog counts (total, completed, to-do, in progress), average rating, completions this month, and the most recently finished entries",
			MIMEType:    "application/json",
		},
		s.handleStatsResource,
	)
}

func (s *Server) catalogResourceHandler(cat collection.Catalog) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := catalogURI(cat.Name())
	return func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		items := cat.Entries(query.Params{})
		return resourceJSON(request.Params.URI, ResourceData{
			Metadata: ResourceMetadata{
				Count:       len(items),
				ResourceURI: uri,
				Source:      string(cat.Source()),
			},
			Data:  items,
			Links: s.links(uri),
		})
	}
}

func (s *Server) handleStatsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	since, _ := timeutil.ParsePeriod("month", s.now())
	stats := s.state.Stats(since)
	return resourceJSON(request.Params.URI, ResourceData{
		Metadata: ResourceMetadata{
			Count:       len(stats),
			ResourceURI: statsURI,
		},
		Data:  stats,
		Links: s.links(statsURI),
	})
}

// links points at every other resource.
func (s *Server) links(self string) map[string]string {
	links := make(map[string]string)
	for _, cat := range s.state.Catalogs() {
		if uri := catalogURI(cat.Name()); uri != self {
			links[cat.Name()] = uri
		}
	}
	if self != statsURI {
		links["stats"] = statsURI
	}
	return links
}

func resourceJSON(uri string, data ResourceData) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
