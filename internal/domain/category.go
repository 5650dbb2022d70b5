package domain

// Category is the closed set of service domains a listing belongs to.
// The Spanish labels are the stored wire values. CategoryAll is a filter
// sentinel only and must never appear as stored data.
type Category string

const (
	CategoryAll        Category = "Todos"
	CategoryHomeRepair Category = "Reparaciones del Hogar"
	CategoryAutomotive Category = "Automotriz"
	CategoryTechnology Category = "Tecnología"
	CategoryBusiness   Category = "Negocios y Tiendas"
	CategoryHealth     Category = "Salud y Bienestar"
	CategoryEducation  Category = "Educación"
	CategoryEvents     Category = "Eventos"
)

// storedCategories excludes the ALL sentinel.
var storedCategories = []Category{
	CategoryHomeRepair,
	CategoryAutomotive,
	CategoryTechnology,
	CategoryBusiness,
	CategoryHealth,
	CategoryEducation,
	CategoryEvents,
}

// Categories returns the categories a listing may be stored under.
func Categories() []Category {
	out := make([]Category, len(storedCategories))
	copy(out, storedCategories)
	return out
}

// FilterCategories returns the ALL sentinel followed by the stored categories,
// in display order.
func FilterCategories() []Category {
	return append([]Category{CategoryAll}, storedCategories...)
}

// ValidStored reports whether c is a category a listing may carry.
func (c Category) ValidStored() bool {
	for _, v := range storedCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Valid reports whether c is a stored category or the ALL sentinel.
func (c Category) Valid() bool {
	return c == CategoryAll || c.ValidStored()
}

// defaultImages maps each category to its fallback image.
var defaultImages = map[Category]string{
	CategoryHomeRepair: "https://images.unsplash.com/photo-1581244277943-fe4a9c777189?auto=format&fit=crop&q=80&w=600",
	CategoryAutomotive: "https://images.unsplash.com/photo-1486262715619-01b80250e0dc?auto=format&fit=crop&q=80&w=600",
	CategoryTechnology: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?auto=format&fit=crop&q=80&w=600",
	CategoryBusiness:   "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&q=80&w=600",
	CategoryHealth:     "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?auto=format&fit=crop&q=80&w=600",
	CategoryEducation:  "https://images.unsplash.com/photo-1524178232363-1fb2b075b655?auto=format&fit=crop&q=80&w=600",
	CategoryEvents:     "https://images.unsplash.com/photo-1511578314322-379afb476865?auto=format&fit=crop&q=80&w=600",
	CategoryAll:        "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&q=80&w=600",
}

// DefaultImage returns the stock image for a category. Unknown categories get
// the generic image.
func DefaultImage(c Category) string {
	if url, ok := defaultImages[c]; ok {
		return url
	}
	return defaultImages[CategoryAll]
}
