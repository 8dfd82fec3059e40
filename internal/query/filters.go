package query

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"go.pilab.hu/partsdesk/domain"
)

// ProductSearch describes one catalog search request: a free-text term
// ORed across the searchable fields, optional exact-match facets, and a
// validated sort and pagination window.
type ProductSearch struct {
	Term     string
	Category string
	CarMake  string
	Sort     Sort
	Offset   int
}

// Filter builds the $match document. Only visible products are searched.
func (q ProductSearch) Filter() bson.D {
	and := bson.A{
		bson.D{{Key: "is_view", Value: true}},
		bson.D{{Key: "$or", Value: bson.A{
			Contains("brand", q.Term),
			Contains("name", q.Term),
			Contains("description", q.Term),
			Contains("part_number", q.Term),
		}}},
	}
	if q.Category != "" {
		and = append(and, bson.D{{Key: "category", Value: q.Category}})
	}
	if q.CarMake != "" {
		and = append(and, bson.D{{Key: "car_make", Value: q.CarMake}})
	}
	return bson.D{{Key: "$and", Value: and}}
}

// IncidentList describes one ticket list request.
type IncidentList struct {
	Term   string
	Type   string
	Sort   Sort
	Offset int
}

// Filter ANDs a title substring match with a type substring match; both
// terms default to match-everything when empty.
func (q IncidentList) Filter() bson.D {
	return bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$or", Value: bson.A{Contains("title", q.Term)}}},
		Contains("type", q.Type),
	}}}
}

// UserList describes one user list request. Admin accounts are always
// excluded; the listing is fixed to ascending username order.
type UserList struct {
	Term   string
	Offset int
}

// Filter ANDs the username substring match with the admin exclusion.
func (q UserList) Filter() bson.D {
	return bson.D{{Key: "$and", Value: bson.A{
		Contains("username", q.Term),
		bson.D{{Key: "role", Value: bson.D{{Key: "$ne", Value: string(domain.RoleAdmin)}}}},
	}}}
}

// FacetFields maps the public facet names to stored fields. Facet queries
// never accept a raw field name from the caller.
var FacetFields = map[string]string{
	"brand":    "brand",
	"category": "category",
	"carMake":  "car_make",
	"position": "position",
}
