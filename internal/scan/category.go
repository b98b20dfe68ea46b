package scan

// CategoryKind tags a Category.
type CategoryKind int

const (
	CategoryExtension CategoryKind = iota
	CategoryNoExtension
	CategoryImproper
	CategoryFolder
)

// Category is the group an entry belongs to. Only CategoryExtension carries
// a value in Ext; the other kinds are fixed sentinels, so an extension can
// never be mistaken for one. Category is comparable and usable as a map key.
type Category struct {
	Kind CategoryKind
	Ext  string
}

var (
	NoExtension = Category{Kind: CategoryNoExtension}
	Improper    = Category{Kind: CategoryImproper}
	Folder      = Category{Kind: CategoryFolder}
)

// Extension returns the category for a lowercase extension such as ".txt".
func Extension(ext string) Category {
	return Category{Kind: CategoryExtension, Ext: ext}
}

// String returns the display label: the extension itself, or "No Extension",
// "Improper File", "Folder".
func (c Category) String() string {
	switch c.Kind {
	case CategoryNoExtension:
		return "No Extension"
	case CategoryImproper:
		return "Improper File"
	case CategoryFolder:
		return "Folder"
	default:
		return c.Ext
	}
}

// CategoryOf maps a classified entry to exactly one category.
func CategoryOf(e Entry) Category {
	switch e.Kind {
	case Directory:
		return Folder
	case Regular:
		if e.Ext != "" {
			return Extension(e.Ext)
		}
		return NoExtension
	default:
		return Improper
	}
}
