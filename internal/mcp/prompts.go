// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Workflow templates for picking what to do next and reviewing what was finished

package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerWhatNextPrompt()
	s.registerYearInReviewPrompt()
}

func (s *Server) registerWhatNextPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "what-next",
			Description: "Pick the next book to read, movie to watch, or recipe to cook from the to-do list, based on what you rated highly",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "catalog",
					Description: "books, movies, or recipes (default: books)",
					Required:    false,
				},
				{
					Name:        "mood",
					Description: "Optional free-text mood or constraint, e.g. 'short and funny' or 'under 30 minutes'",
					Required:    false,
				},
			},
		},
		s.handleWhatNext,
	)
}

func (s *Server) handleWhatNext(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	catalog := "books"
	mood := ""
	if req.Params.Arguments != nil {
		if c, ok := req.Params.Arguments["catalog"]; ok && c != "" {
			catalog = c
		}
		mood = req.Params.Arguments["mood"]
	}
	cat, err := s.state.Catalog(catalog)
	if err != nil {
		return nil, err
	}
	vocab := cat.Statuses()

	moodLine := "No particular mood was given; favor variety."
	if mood != "" {
		moodLine = fmt.Sprintf("The user's mood or constraint: %q. Weigh it above everything else.", mood)
	}

	template := fmt.Sprintf(`# What Next: %[1]s

## Overview
Recommend one entry from the %[1]s to-do list (status %[2]q) and two alternates. %[3]s

## Workflow Steps

### Step 1: Learn the user's taste
Call list_items with catalog %[1]q, tab "completed", and sort "rating".
Note which categories and creators earn 4 or 5 stars and which earn 1 or 2.

### Step 2: Review the queue
Call list_items with catalog %[1]q and tab "todo".
Entries already %[4]q are in progress; ask whether to finish those first.

### Step 3: Narrow by category
Call list_categories for %[1]q. If one category dominates the high ratings,
call list_items again with that category.

### Step 4: Recommend
Call get_item on the top candidate to read its summary. Present:
- the pick, with one sentence tying it to something the user rated highly
- two alternates from different categories

### Step 5: Record the decision
If the user accepts and the entry is not on the to-do list yet, call plan_item.
When they finish it later, call mark_completed with a rating from 1 to 5.
`, cat.Name(), vocab.NotStarted, moodLine, vocab.InProgress)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Pick the next entry from the %s to-do list", cat.Name()),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) registerYearInReviewPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "year-in-review",
			Description: "Summarize everything read, watched, and cooked in a year, with favorites and patterns",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "year",
					Description: "Four-digit year (default: current year)",
					Required:    false,
				},
			},
		},
		s.handleYearInReview,
	)
}

func (s *Server) handleYearInReview(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	year := s.now().Year()
	if req.Params.Arguments != nil {
		if y, ok := req.Params.Arguments["year"]; ok && y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil || parsed < 1000 || parsed > 9999 {
				return nil, fmt.Errorf("invalid year %q", y)
			}
			year = parsed
		}
	}

	template := fmt.Sprintf(`# %[1]d in Review

## Overview
Write a short, warm retrospective of the user's %[1]d across books, movies, and recipes.

## Workflow Steps

### Step 1: Gather completions
For each catalog (books, movies, recipes) call list_items with tab "completed"
and sort "date". Keep entries whose completion date (dateFinished, dateWatched,
or dateMade) falls in %[1]d.

### Step 2: Find the favorites
Within the kept entries, the 5-star ratings are the headline. Quote the user's
own review or notes where they exist.

### Step 3: Spot patterns
Count entries per category. Mention the busiest month, any creator who shows
up more than once, and how ratings compare with the catalog average in the
hobbies://stats resource.

### Step 4: Look ahead
Suggest two entries from each to-do list (list_items with tab "todo") that
fit the patterns above.

## Output Format
- One paragraph per catalog
- A "Favorites" list
- A "Next up" list
`, year)

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Retrospective for %d", year),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
