// ABOUTME: MCP tool definitions and handlers for catalog operations
// ABOUTME: Lets agents query the view pipeline, complete or plan entries, and add, edit, or delete them

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/hobbies/internal/collection"
	"github.com/harper/hobbies/internal/content"
	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/models"
	"github.com/harper/hobbies/internal/query"
	"github.com/harper/hobbies/internal/timeutil"
)

// Type definitions for input/output structures

type ListItemsInput struct {
	Catalog  string `json:"catalog"`
	Tab      string `json:"tab,omitempty"`
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

type ListItemsOutput struct {
	Catalog string         `json:"catalog"`
	Items   []models.Entry `json:"items"`
	Count   int            `json:"count"`
	Counts  query.Counts   `json:"counts"`
	Filters map[string]any `json:"filters"`
}

type ItemRefInput struct {
	Catalog string `json:"catalog"`
	ID      string `json:"id"`
}

type GetItemOutput struct {
	Catalog string       `json:"catalog"`
	Item    models.Entry `json:"item"`
	Detail  string       `json:"detail"`
}

type MarkCompletedInput struct {
	Catalog string `json:"catalog"`
	ID      string `json:"id"`
	Rating  int    `json:"rating"`
	Note    string `json:"note,omitempty"`
	Date    string `json:"date,omitempty"`
}

type ItemOutput struct {
	Catalog string       `json:"catalog"`
	Item    models.Entry `json:"item"`
	Message string       `json:"message"`
}

type AddItemInput struct {
	Catalog string   `json:"catalog"`
	Title   string   `json:"title"`
	Creator string   `json:"creator"`
	Year    int      `json:"year,omitempty"`
	Genres  []string `json:"genres,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Link    string   `json:"link,omitempty"`
}

type UpdateItemInput struct {
	Catalog string         `json:"catalog"`
	ID      string         `json:"id"`
	Fields  map[string]any `json:"fields"`
}

type DeleteItemOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ListCategoriesOutput struct {
	Catalog    string   `json:"catalog"`
	Categories []string `json:"categories"`
}

// Shared schema fragments

var catalogProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"books", "movies", "recipes"},
	"description": "Which catalog to use: 'books', 'movies', or 'recipes'",
}

var idProperty = map[string]interface{}{
	"type":        "string",
	"description": "Entry ID, or a unique prefix of at least 6 characters. Example: 'book-3f2a9c'",
}

// Tool registration

func (s *Server) registerTools() {
	s.registerListItemsTool()
	s.registerGetItemTool()
	s.registerMarkCompletedTool()
	s.registerMarkIncompleteTool()
	s.registerPlanItemTool()
	s.registerAddItemTool()
	s.registerUpdateItemTool()
	s.registerDeleteItemTool()
	s.registerListCategoriesTool()
}

func (s *Server) registerListItemsTool() {
	tool := mcp.Tool{
		Name:        "list_items",
		Description: "List entries from one catalog through the same view pipeline the CLI uses: tab filter, then case-insensitive text search, then category filter, then sort. Use tab 'todo' for the reading/watching/cooking queue and 'completed' for what is done.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"tab": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"all", "completed", "todo"},
					"description": "Status grouping. Defaults to 'all'.",
				},
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Substring matched against title/name, author/director, genres or cuisine, and recipe ingredients",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Genre (books, movies) or cuisine (recipes). 'all' means no restriction. See list_categories.",
				},
				"sort": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"title", "rating", "date", "year"},
					"description": "Sort key. Rating and date sort newest/highest first with unrated or undated entries last. Year applies to movies.",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum entries to return. Defaults to all.",
				},
			},
			Required: []string{"catalog"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListItems)
}

func (s *Server) registerGetItemTool() {
	tool := mcp.Tool{
		Name:        "get_item",
		Description: "Get one entry with all fields plus a Markdown detail page (summary, ingredients, instructions, review).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
			},
			Required: []string{"catalog", "id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetItem)
}

func (s *Server) registerMarkCompletedTool() {
	tool := mcp.Tool{
		Name:        "mark_completed",
		Description: "Mark an entry as read, watched, or made. Rating, note, and completion date are recorded together.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
				"rating": map[string]interface{}{
					"type":        "integer",
					"minimum":     config.MinRating,
					"maximum":     config.MaxRating,
					"description": "Personal rating from 1 to 5",
				},
				"note": map[string]interface{}{
					"type":        "string",
					"description": "Optional review (books, movies) or cooking notes (recipes)",
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Completion date: 'today' (default), 'yesterday', or YYYY-MM-DD",
				},
			},
			Required: []string{"catalog", "id", "rating"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleMarkCompleted)
}

func (s *Server) registerMarkIncompleteTool() {
	tool := mcp.Tool{
		Name:        "mark_incomplete",
		Description: "Move a completed entry back to the to-do list. Clears its rating, note, and completion date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
			},
			Required: []string{"catalog", "id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleMarkIncomplete)
}

func (s *Server) registerPlanItemTool() {
	tool := mcp.Tool{
		Name:        "plan_item",
		Description: "Put an entry on the to-do list (to-read, to-watch, to-make). Mostly useful for recipes, which start outside the list.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
			},
			Required: []string{"catalog", "id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handlePlanItem)
}

func (s *Server) registerAddItemTool() {
	tool := mcp.Tool{
		Name:        "add_item",
		Description: "Add a book or movie to its catalog. The entry starts on the to-do list and gets a fresh ID. Recipes cannot be added.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"books", "movies"},
					"description": "'books' or 'movies'",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Title of the book or movie",
				},
				"creator": map[string]interface{}{
					"type":        "string",
					"description": "Author (books) or director (movies)",
				},
				"year": map[string]interface{}{
					"type":        "integer",
					"description": "Release year (movies only)",
				},
				"genres": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Genres used by the category filter",
				},
				"summary": map[string]interface{}{
					"type":        "string",
					"description": "Official summary; HTML is converted to Markdown",
				},
				"link": map[string]interface{}{
					"type":        "string",
					"description": "Link to an official page",
				},
			},
			Required: []string{"catalog", "title", "creator"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleAddItem)
}

func (s *Server) registerUpdateItemTool() {
	tool := mcp.Tool{
		Name:        "update_item",
		Description: "Change fields of an entry by merging a JSON object into it. Field names are the camelCase names returned by get_item. The id and dateAdded fields cannot be changed. Rating, review, notes, and completion dates change only through mark_completed and mark_incomplete; status may only move an unfinished entry between to-do statuses.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
				"fields": map[string]interface{}{
					"type":        "object",
					"description": "Fields to replace. Example: {\"tags\": [\"book club\"], \"genre\": [\"Fantasy\"]}",
				},
			},
			Required: []string{"catalog", "id", "fields"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleUpdateItem)
}

func (s *Server) registerDeleteItemTool() {
	tool := mcp.Tool{
		Name:        "delete_item",
		Description: "Delete a book or movie permanently. Recipes cannot be deleted.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
				"id":      idProperty,
			},
			Required: []string{"catalog", "id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleDeleteItem)
}

func (s *Server) registerListCategoriesTool() {
	tool := mcp.Tool{
		Name:        "list_categories",
		Description: "List the genres (books, movies) or cuisines (recipes) present in a catalog, led by the 'all' sentinel.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog": catalogProperty,
			},
			Required: []string{"catalog"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListCategories)
}

// Tool handlers

func (s *Server) handleListItems(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListItemsInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, err := s.state.Catalog(input.Catalog)
	if err != nil {
		return nil, err
	}
	tab, err := query.ParseTab(input.Tab)
	if err != nil {
		return nil, err
	}
	sortKey, err := query.ParseSort(input.Sort)
	if err != nil {
		return nil, err
	}
	if input.Limit != nil && *input.Limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative, got %d", *input.Limit)
	}

	params := query.Params{Tab: tab, Search: input.Search, Category: input.Category, Sort: sortKey}
	items := cat.Entries(params)
	if input.Limit != nil && *input.Limit < len(items) {
		items = items[:*input.Limit]
	}

	output := ListItemsOutput{
		Catalog: cat.Name(),
		Items:   items,
		Count:   len(items),
		Counts:  cat.Counts(),
		Filters: map[string]any{
			"tab":      tab,
			"search":   input.Search,
			"category": input.Category,
			"sort":     sortKey,
		},
	}
	return jsonResult(output)
}

func (s *Server) handleGetItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ItemRefInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}

	return jsonResult(GetItemOutput{
		Catalog: cat.Name(),
		Item:    entry,
		Detail:  content.Detail(entry),
	})
}

func (s *Server) handleMarkCompleted(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input MarkCompletedInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	if input.Rating < config.MinRating || input.Rating > config.MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d, got %d", config.MinRating, config.MaxRating, input.Rating)
	}
	date, err := timeutil.CompletionDate(input.Date, s.now())
	if err != nil {
		return nil, err
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := cat.MarkCompleted(entry.EntryID(), input.Rating, input.Note, date); err != nil {
		return nil, fmt.Errorf("failed to mark entry completed: %w", err)
	}

	return s.itemResult(cat, entry.EntryID(), fmt.Sprintf("Marked %q as %s", entry.DisplayTitle(), cat.Statuses().Completed))
}

func (s *Server) handleMarkIncomplete(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ItemRefInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := cat.MarkIncomplete(entry.EntryID()); err != nil {
		return nil, fmt.Errorf("failed to mark entry incomplete: %w", err)
	}

	return s.itemResult(cat, entry.EntryID(), fmt.Sprintf("Moved %q back to %s", entry.DisplayTitle(), cat.Statuses().NotStarted))
}

func (s *Server) handlePlanItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ItemRefInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := cat.Plan(entry.EntryID()); err != nil {
		return nil, fmt.Errorf("failed to plan entry: %w", err)
	}

	return s.itemResult(cat, entry.EntryID(), fmt.Sprintf("Added %q to the to-do list", entry.DisplayTitle()))
}

func (s *Server) handleAddItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input AddItemInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	creator := strings.TrimSpace(input.Creator)
	if title == "" || creator == "" {
		return nil, fmt.Errorf("title and creator are required")
	}

	cat, err := s.state.Catalog(input.Catalog)
	if err != nil {
		return nil, err
	}

	var added models.Entry
	switch cat.Name() {
	case s.state.Books.Name():
		b := models.NewBook(title, creator, input.Genres...)
		b.OfficialSummary = content.ToMarkdown(input.Summary)
		b.OfficialLink = input.Link
		stored, err := s.state.Books.Add(*b)
		if err != nil {
			return nil, fmt.Errorf("failed to add book: %w", err)
		}
		added = &stored
	case s.state.Movies.Name():
		m := models.NewMovie(title, creator, input.Year, input.Genres...)
		m.OfficialSummary = content.ToMarkdown(input.Summary)
		m.OfficialLink = input.Link
		stored, err := s.state.Movies.Add(*m)
		if err != nil {
			return nil, fmt.Errorf("failed to add movie: %w", err)
		}
		added = &stored
	default:
		return nil, fmt.Errorf("add %s: %w", cat.Name(), collection.ErrUnsupported)
	}

	return jsonResult(ItemOutput{
		Catalog: cat.Name(),
		Item:    added,
		Message: fmt.Sprintf("Added %q", added.DisplayTitle()),
	})
}

func (s *Server) handleUpdateItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input UpdateItemInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if len(input.Fields) == 0 {
		return nil, fmt.Errorf("fields must not be empty")
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}

	patch, err := json.Marshal(input.Fields)
	if err != nil {
		return nil, fmt.Errorf("invalid fields: %w", err)
	}
	updated, err := cat.Patch(entry.EntryID(), patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return jsonResult(ItemOutput{
		Catalog: cat.Name(),
		Item:    updated,
		Message: fmt.Sprintf("Updated %q", updated.DisplayTitle()),
	})
}

func (s *Server) handleDeleteItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ItemRefInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, entry, err := s.resolve(input.Catalog, input.ID)
	if err != nil {
		return nil, err
	}
	if _, err := cat.Delete(entry.EntryID()); err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return jsonResult(DeleteItemOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted %q from %s", entry.DisplayTitle(), cat.Name()),
		ID:      entry.EntryID(),
	})
}

func (s *Server) handleListCategories(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ItemRefInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	cat, err := s.state.Catalog(input.Catalog)
	if err != nil {
		return nil, err
	}
	return jsonResult(ListCategoriesOutput{Catalog: cat.Name(), Categories: cat.Categories()})
}

// Helpers

func (s *Server) resolve(catalogName, ref string) (collection.Catalog, models.Entry, error) {
	cat, err := s.state.Catalog(catalogName)
	if err != nil {
		return nil, nil, err
	}
	entry, err := cat.Find(strings.TrimSpace(ref))
	if err != nil {
		return nil, nil, err
	}
	return cat, entry, nil
}

func (s *Server) itemResult(cat collection.Catalog, id, message string) (*mcp.CallToolResult, error) {
	entry, err := cat.Find(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload entry: %w", err)
	}
	return jsonResult(ItemOutput{Catalog: cat.Name(), Item: entry, Message: message})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
