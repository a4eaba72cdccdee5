package utils

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductFilter builds a Mongo filter from list query parameters.
// Unrecognized or malformed parameters are ignored; in particular a price
// range that is not "<min>-<max>" drops the price filter entirely.
func ProductFilter(query url.Values) bson.M {
	filter := bson.M{}

	if v := query.Get("category"); v != "" {
		filter["category"] = v
	}
	if v := query.Get("brand"); v != "" {
		filter["brand"] = v
	}
	if v := query.Get("size"); v != "" {
		filter["size"] = bson.M{"$in": []string{v}}
	}
	if v := query.Get("color"); v != "" {
		filter["colors"] = bson.M{"$in": []string{v}}
	}
	if v := query.Get("price"); v != "" {
		if priceRange, ok := parsePriceRange(v); ok {
			filter["price"] = priceRange
		}
	}
	if v := query.Get("name"); v != "" {
		filter["name"] = bson.M{"$regex": v, "$options": "i"}
	}

	return filter
}

// parsePriceRange parses "min-max" into an inclusive range filter.
func parsePriceRange(value string) (bson.M, bool) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return nil, false
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, false
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, false
	}
	return bson.M{"$gte": min, "$lte": max}, true
}
