// ABOUTME: Explicit application state holding the books, movies, and recipes stores
// ABOUTME: Built once from a storage collaborator and passed to the CLI and MCP server

package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harper/hobbies/internal/collection"
	"github.com/harper/hobbies/internal/models"
	"github.com/harper/hobbies/internal/seed"
	"github.com/harper/hobbies/internal/storage"
)

type (
	BookStore   = collection.Store[models.Book, *models.Book]
	MovieStore  = collection.Store[models.Movie, *models.Movie]
	RecipeStore = collection.Store[models.Recipe, *models.Recipe]
)

// Catalog domains.
var (
	BooksDomain = collection.Domain[models.Book]{
		Name:     storage.KeyBooks,
		IDPrefix: "book",
		Seed:     seed.Books,
		Mutable:  true,
	}
	MoviesDomain = collection.Domain[models.Movie]{
		Name:     storage.KeyMovies,
		IDPrefix: "movie",
		Seed:     seed.Movies,
		Mutable:  true,
	}
	RecipesDomain = collection.Domain[models.Recipe]{
		Name:     storage.KeyRecipes,
		IDPrefix: "recipe",
		Seed:     seed.Recipes,
	}
)

// State is the application's set of catalogs.
type State struct {
	Books   *BookStore
	Movies  *MovieStore
	Recipes *RecipeStore
}

// New opens every catalog against kv.
func New(kv storage.KV, logger zerolog.Logger, opts ...collection.Option) (*State, error) {
	books, err := collection.Open[models.Book, *models.Book](kv, BooksDomain, logger, opts...)
	if err != nil {
		return nil, err
	}
	movies, err := collection.Open[models.Movie, *models.Movie](kv, MoviesDomain, logger, opts...)
	if err != nil {
		return nil, err
	}
	recipes, err := collection.Open[models.Recipe, *models.Recipe](kv, RecipesDomain, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &State{Books: books, Movies: movies, Recipes: recipes}, nil
}

// Catalogs returns every catalog in display order.
func (s *State) Catalogs() []collection.Catalog {
	return []collection.Catalog{s.Books.Catalog(), s.Movies.Catalog(), s.Recipes.Catalog()}
}

// Catalog looks up a catalog by name. Singular names are accepted.
func (s *State) Catalog(name string) (collection.Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case storage.KeyBooks, "book":
		return s.Books.Catalog(), nil
	case storage.KeyMovies, "movie":
		return s.Movies.Catalog(), nil
	case storage.KeyRecipes, "recipe":
		return s.Recipes.Catalog(), nil
	}
	return nil, fmt.Errorf("unknown catalog %q (want books, movies, or recipes)", name)
}
