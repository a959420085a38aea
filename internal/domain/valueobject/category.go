package valueobject

// Category classifies products for bulk-purchase discounts.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryBook        Category = "BOOK"
	CategoryFurniture   Category = "FURNITURE"
	CategoryClothing    Category = "CLOTHING"
	CategoryFood        Category = "FOOD"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryBook, CategoryFurniture, CategoryClothing, CategoryFood:
		return true
	}
	return false
}
