package models

// Categories recognized by the transaction form. Free-text labels outside
// this set are stored as given and aggregated verbatim.
var Categories = []string{
	"General",
	"Food",
	"Transport",
	"Utilities",
	"Entertainment",
	"Health",
	"Shopping",
	"Salary",
	"Investment",
}

// CategoryUncategorized is the aggregation bucket for records without a
// category label.
const CategoryUncategorized = "Uncategorized"

// IsRecognizedCategory reports whether the label is one of the fixed set.
func IsRecognizedCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
