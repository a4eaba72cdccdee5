package models

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORDER-\d{1,6}$`)

	for i := 0; i < 1000; i++ {
		number := NewOrderNumber()
		if !pattern.MatchString(number) {
			t.Fatalf("order number %q does not match ORDER-<n>", number)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(number, "ORDER-"))
		if err != nil {
			t.Fatalf("order number %q: %v", number, err)
		}
		if n < 0 || n >= 1000000 {
			t.Fatalf("order number %q out of range", number)
		}
	}
}
