package utils

import (
	"net/url"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestProductFilterEmpty(t *testing.T) {
	filter := ProductFilter(url.Values{})
	if len(filter) != 0 {
		t.Errorf("empty query produced filter %+v", filter)
	}
}

func TestProductFilterExactAndMembership(t *testing.T) {
	query := url.Values{}
	query.Set("category", "shoes")
	query.Set("brand", "acme")
	query.Set("size", "XL")
	query.Set("color", "red")

	filter := ProductFilter(query)

	want := bson.M{
		"category": "shoes",
		"brand":    "acme",
		"size":     bson.M{"$in": []string{"XL"}},
		"colors":   bson.M{"$in": []string{"red"}},
	}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("filter = %+v, want %+v", filter, want)
	}
}

func TestProductFilterPriceRange(t *testing.T) {
	query := url.Values{}
	query.Set("price", "10-20")

	filter := ProductFilter(query)

	want := bson.M{"price": bson.M{"$gte": 10, "$lte": 20}}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("filter = %+v, want %+v", filter, want)
	}
}

func TestProductFilterMalformedPriceIgnored(t *testing.T) {
	for _, bad := range []string{"abc", "10", "10-", "-20", "a-b", "10-20-30"} {
		query := url.Values{}
		query.Set("price", bad)

		filter := ProductFilter(query)
		if _, ok := filter["price"]; ok {
			t.Errorf("price %q should be ignored, got %+v", bad, filter)
		}
	}
}

func TestProductFilterNameRegex(t *testing.T) {
	query := url.Values{}
	query.Set("name", "Teak")

	filter := ProductFilter(query)

	want := bson.M{"name": bson.M{"$regex": "Teak", "$options": "i"}}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("filter = %+v, want %+v", filter, want)
	}
}
