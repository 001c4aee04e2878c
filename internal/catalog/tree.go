package catalog

import "github.com/osse101/RogueMods_Go/internal/domain"

// Entry is one child of a Category: either a *Category or an *Item
type Entry interface {
	Label() string
	isEntry()
}

// Category is a named, ordered group of entries
type Category struct {
	Name    string
	Entries []Entry
}

// Item is a selectable catalog leaf
type Item struct {
	Descriptor *domain.Descriptor
}

// Label implements Entry
func (c *Category) Label() string { return c.Name }

// Label implements Entry
func (i *Item) Label() string { return i.Descriptor.Name }

func (*Category) isEntry() {}
func (*Item) isEntry()     {}

func newCategory(name string, entries ...Entry) *Category {
	return &Category{Name: name, Entries: entries}
}

func itemsOf(descs []*domain.Descriptor) []Entry {
	out := make([]Entry, 0, len(descs))
	for _, d := range descs {
		out = append(out, &Item{Descriptor: d})
	}
	return out
}

// Flatten returns every item below the given categories in display order
func Flatten(categories ...*Category) []*Item {
	var out []*Item
	for _, c := range categories {
		for _, e := range c.Entries {
			switch v := e.(type) {
			case *Item:
				out = append(out, v)
			case *Category:
				out = append(out, Flatten(v)...)
			}
		}
	}
	return out
}

// CountCategories counts the given categories and every nested one
func CountCategories(categories ...*Category) int {
	n := 0
	for _, c := range categories {
		n++
		for _, e := range c.Entries {
			if sub, ok := e.(*Category); ok {
				n += CountCategories(sub)
			}
		}
	}
	return n
}

// Find returns the direct child category with the given name
func (c *Category) Find(name string) *Category {
	for _, e := range c.Entries {
		if sub, ok := e.(*Category); ok && sub.Name == name {
			return sub
		}
	}
	return nil
}
