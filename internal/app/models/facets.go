package models

// Category is a named catalog facet.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// LevelFacet pairs a difficulty level with its URL slug.
type LevelFacet struct {
	ID   int64  `json:"id"`
	Name Level  `json:"name"`
	Slug string `json:"slug"`
}

// DurationRange is a duration filter bucket. Value is the wire token the
// filter UI sends ("0-5", "5-10", "10+").
type DurationRange struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Categories lists every catalog category, in display order.
var Categories = []Category{
	{ID: 1, Name: "Development", Slug: "development"},
	{ID: 2, Name: "Design", Slug: "design"},
	{ID: 3, Name: "Business", Slug: "business"},
	{ID: 4, Name: "Marketing", Slug: "marketing"},
	{ID: 5, Name: "Data Science", Slug: "data-science"},
	{ID: 6, Name: "IT & Software", Slug: "it-software"},
	{ID: 7, Name: "Personal Development", Slug: "personal-development"},
}

// Levels lists the difficulty facets.
var Levels = []LevelFacet{
	{ID: 1, Name: LevelBeginner, Slug: "beginner"},
	{ID: 2, Name: LevelIntermediate, Slug: "intermediate"},
	{ID: 3, Name: LevelAdvanced, Slug: "advanced"},
}

// Durations lists the duration buckets.
var Durations = []DurationRange{
	{ID: 1, Name: "0-5 hours", Value: "0-5"},
	{ID: 2, Name: "5-10 hours", Value: "5-10"},
	{ID: 3, Name: "10+ hours", Value: "10+"},
}
