// Package store holds the static store layout: the grid dimensions and the
// catalog mapping product names and barcodes to shelf locations, prices and
// opening stock. The catalog is read-only configuration; stock mutation goes
// through the inventory ledger.
package store

import (
	"fmt"
	"strings"
)

// ErrUnknownProduct is returned when a product name cannot be resolved
// against the catalog.
var ErrUnknownProduct = fmt.Errorf("product not found")

// Cell is a (row, column) coordinate in the store grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid describes the rectangular store layout.
type Grid struct {
	Rows int
	Cols int
}

// Contains reports whether c lies within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Product is a single catalog entry. Products are defined once at startup
// and never created or deleted at runtime.
type Product struct {
	Name    string
	Cell    Cell
	Price   float64
	Stock   int
	Barcode string
	Brands  []string
}

// Catalog is the static lookup from product name (case-insensitive) and
// barcode to product data. It has no side effects; all methods are
// safe for concurrent use because the maps are never mutated after New.
type Catalog struct {
	grid      Grid
	byName    map[string]*Product
	byBarcode map[string]*Product
	entrance  Cell
}

// New builds a catalog over the given grid. Products whose cell falls
// outside the grid are rejected, as are duplicate names or barcodes.
func New(grid Grid, entrance Cell, products []Product) (*Catalog, error) {
	if !grid.Contains(entrance) {
		return nil, fmt.Errorf("entrance %v outside %dx%d grid", entrance, grid.Rows, grid.Cols)
	}

	c := &Catalog{
		grid:      grid,
		byName:    make(map[string]*Product, len(products)),
		byBarcode: make(map[string]*Product, len(products)),
		entrance:  entrance,
	}

	for i := range products {
		p := products[i]
		key := normalize(p.Name)
		if key == "" {
			return nil, fmt.Errorf("product with empty name")
		}
		if !grid.Contains(p.Cell) {
			return nil, fmt.Errorf("product %q at %v outside %dx%d grid", p.Name, p.Cell, grid.Rows, grid.Cols)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", p.Name)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %q has negative stock", p.Name)
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate product name %q", p.Name)
		}
		c.byName[key] = &p
		if p.Barcode != "" {
			if _, dup := c.byBarcode[p.Barcode]; dup {
				return nil, fmt.Errorf("duplicate barcode %q", p.Barcode)
			}
			c.byBarcode[p.Barcode] = &p
		}
	}

	return c, nil
}

// Grid returns the store grid dimensions.
func (c *Catalog) Grid() Grid { return c.grid }

// Entrance returns the cell where every trolley starts.
func (c *Catalog) Entrance() Cell { return c.entrance }

// Locate resolves a product name (case-insensitive) to its shelf cell.
func (c *Catalog) Locate(name string) (Cell, error) {
	p, ok := c.byName[normalize(name)]
	if !ok {
		return Cell{}, fmt.Errorf("locate %q: %w", name, ErrUnknownProduct)
	}
	return p.Cell, nil
}

// Product returns the catalog entry for a product name.
func (c *Catalog) Product(name string) (Product, error) {
	p, ok := c.byName[normalize(name)]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", name, ErrUnknownProduct)
	}
	return *p, nil
}

// ByBarcode looks a product up by its barcode. An unrecognized code is a
// normal outcome for a scanner, so it is reported with a false flag rather
// than an error.
func (c *Catalog) ByBarcode(code string) (Product, bool) {
	p, ok := c.byBarcode[strings.TrimSpace(code)]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Products returns all catalog entries, for building the opening stock of
// the inventory ledger.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.byName))
	for _, p := range c.byName {
		out = append(out, *p)
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
