package store

// DefaultGrid is the demo store layout: 4 rows by 3 columns with the
// entrance at the top-left corner.
var DefaultGrid = Grid{Rows: 4, Cols: 3}

// DefaultEntrance is where a freshly paired trolley starts.
var DefaultEntrance = Cell{Row: 0, Col: 0}

// DefaultProducts is the canonical demo catalog. Brand lists come from the
// in-store display data; prices are in rupees.
var DefaultProducts = []Product{
	{
		Name: "milk", Cell: Cell{1, 1}, Price: 50, Stock: 60, Barcode: "8901001",
		Brands: []string{"Amul", "Mother Dairy", "Nestlé", "Heritage", "Aavin"},
	},
	{
		Name: "fruits", Cell: Cell{0, 1}, Price: 60, Stock: 50, Barcode: "8901002",
		Brands: []string{"Apple (Shimla)", "Banana (Yelakki)", "Mango (Alphonso)"},
	},
	{
		Name: "juice", Cell: Cell{0, 2}, Price: 80, Stock: 30, Barcode: "8901003",
		Brands: []string{"Tropicana", "Real", "Minute Maid"},
	},
	{
		Name: "maggi", Cell: Cell{1, 0}, Price: 25, Stock: 40, Barcode: "8901004",
		Brands: []string{"Maggi 2-Minute", "Top Ramen", "Yippee"},
	},
	{
		Name: "shampoo", Cell: Cell{1, 2}, Price: 120, Stock: 20, Barcode: "8901005",
		Brands: []string{"Dove", "Pantene", "Head & Shoulders"},
	},
	{
		Name: "ice cream", Cell: Cell{2, 0}, Price: 70, Stock: 25, Barcode: "8901006",
		Brands: []string{"Amul", "Kwality Walls", "Baskin Robbins"},
	},
	{
		Name: "snacks", Cell: Cell{2, 1}, Price: 40, Stock: 80, Barcode: "8901007",
		Brands: []string{"Lays", "Kurkure", "Bingo"},
	},
	{
		Name: "bakery", Cell: Cell{2, 2}, Price: 90, Stock: 30, Barcode: "8901008",
		Brands: []string{"Britannia Bread", "Modern Bakery", "Local Fresh Cakes"},
	},
	{
		Name: "skin and topical care", Cell: Cell{3, 1}, Price: 150, Stock: 15, Barcode: "8901009",
		Brands: []string{"Nivea", "Vaseline", "Himalaya Herbal"},
	},
}

// DefaultCatalog builds the demo catalog. It panics on error because the
// default data is compile-time constant and a failure is a programming bug.
func DefaultCatalog() *Catalog {
	c, err := New(DefaultGrid, DefaultEntrance, DefaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}
