// ABOUTME: Bundled seed datasets for the books, movies, and recipes catalogs
// ABOUTME: YAML files embedded at build time and decoded fresh on every call

package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/harper/hobbies/internal/models"
)

//go:embed data/*.yaml
var files embed.FS

// Books returns the bundled book catalog.
func Books() ([]models.Book, error) {
	return load[models.Book]("books.yaml")
}

// Movies returns the bundled movie catalog.
func Movies() ([]models.Movie, error) {
	return load[models.Movie]("movies.yaml")
}

// Recipes returns the bundled recipe catalog.
func Recipes() ([]models.Recipe, error) {
	return load[models.Recipe]("recipes.yaml")
}

func load[T any](name string) ([]T, error) {
	data, err := files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", name, err)
	}
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", name, err)
	}
	return items, nil
}
