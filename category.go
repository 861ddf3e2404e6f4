package newsharvest

// Category is the closed topic taxonomy for extracted articles.
type Category string

// Valid categories, in classification priority order. An article
// matching several categories is assigned the first one; CategoryDev is
// the fallback when nothing matches.
const (
	CategoryAI       Category = "AI"
	CategoryStartup  Category = "Startup"
	CategoryTutorial Category = "Tutorial"
	CategoryTrend    Category = "Trend"
	CategoryDev      Category = "Dev"
)

// Categories returns all valid categories in classification priority order.
func Categories() []Category {
	return []Category{
		CategoryAI,
		CategoryStartup,
		CategoryTutorial,
		CategoryTrend,
		CategoryDev,
	}
}

// Valid returns true if c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAI, CategoryStartup, CategoryTutorial, CategoryTrend, CategoryDev:
		return true
	}
	return false
}

// Classifier assigns exactly one category to an article.
// Implementations must be deterministic and total: any (title, content)
// pair maps to exactly one valid Category.
type Classifier interface {
	Classify(title, content string) Category
}
