// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNomineeNotFound  = errors.New("nominee not found")
)

// Nominee is a single candidate within a category. Nominees carry no stable
// identifier of their own; a nominee is referenced by its position in the
// category's nominee list.
type Nominee struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// Category is a single award with an ordered nominee list.
type Category struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Nominees []Nominee `yaml:"nominees" json:"nominees"`
}

// Catalog is the immutable set of categories voters can vote on.
// Built once at startup and passed to every component that needs it.
type Catalog struct {
	categories []Category
	byID       map[string]int
	idByTitle  map[string]string
}

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// New builds a Catalog from category definitions, validating that every
// category has an id, a unique title, and at least one named nominee.
// Titles must be unique because votes are stored by category title and
// resolved back to category ids during tally.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	c := &Catalog{
		categories: categories,
		byID:       make(map[string]int, len(categories)),
		idByTitle:  make(map[string]string, len(categories)),
	}

	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %d has no id", i)
		}
		if cat.Title == "" {
			return nil, fmt.Errorf("category %q has no title", cat.ID)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		if _, dup := c.idByTitle[cat.Title]; dup {
			return nil, fmt.Errorf("duplicate category title %q", cat.Title)
		}
		if len(cat.Nominees) == 0 {
			return nil, fmt.Errorf("category %q has no nominees", cat.ID)
		}
		for j, n := range cat.Nominees {
			if n.Name == "" {
				return nil, fmt.Errorf("category %q nominee %d has no name", cat.ID, j)
			}
		}
		c.byID[cat.ID] = i
		c.idByTitle[cat.Title] = cat.ID
	}

	return c, nil
}

// Parse builds a Catalog from YAML category definitions.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc.Categories)
}

// LoadFile reads a catalog definition from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded SPART awards catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, error) {
	i, ok := c.byID[id]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c.categories[i], nil
}

// Resolve returns the nominee at the given position within a category.
func (c *Catalog) Resolve(categoryID string, index int) (Nominee, error) {
	cat, err := c.Category(categoryID)
	if err != nil {
		return Nominee{}, err
	}
	if index < 0 || index >= len(cat.Nominees) {
		return Nominee{}, ErrNomineeNotFound
	}
	return cat.Nominees[index], nil
}

// TitleOf returns the display title for a category id.
func (c *Catalog) TitleOf(categoryID string) (string, error) {
	cat, err := c.Category(categoryID)
	if err != nil {
		return "", err
	}
	return cat.Title, nil
}

// IDByTitle reverse-resolves a category title back to its id. Vote records
// store the title, so this is the lookup the tally engine depends on.
func (c *Catalog) IDByTitle(title string) (string, bool) {
	id, ok := c.idByTitle[title]
	return id, ok
}
