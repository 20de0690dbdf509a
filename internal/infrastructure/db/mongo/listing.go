package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/blogcraft/blog-api/internal/core/ports"
)

// postListFilter translates list parameters into a Mongo filter document.
// Search becomes a case-insensitive substring match on the title; category
// and tag are exact matches against the respective array fields. Absent
// parameters contribute nothing, so an empty ListParams selects everything.
func postListFilter(p ports.ListParams) bson.M {
	filter := bson.M{}
	if p.Search != "" {
		filter["title"] = bson.M{"$regex": p.Search, "$options": "i"}
	}
	if p.Category != "" {
		filter["categories"] = p.Category
	}
	if p.Tag != "" {
		filter["tags"] = p.Tag
	}
	return filter
}
