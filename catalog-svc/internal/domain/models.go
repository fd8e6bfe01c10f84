package domain

import "time"

const (
	CategoryFood  = "food"
	CategoryJuice = "juice"
)

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Popular     bool      `json:"popular"`
	CreatedAt   time.Time `json:"created_at"`
}

func ValidCategory(category string) bool {
	return category == CategoryFood || category == CategoryJuice
}

// HasTag reports whether the item carries the given tag.
func (m *MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MenuFilter narrows a menu listing. Zero value matches everything.
type MenuFilter struct {
	Category string
	Tag      string
	Popular  bool
}

func (f MenuFilter) Matches(item *MenuItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Tag != "" && !item.HasTag(f.Tag) {
		return false
	}
	if f.Popular && !item.Popular {
		return false
	}
	return true
}
