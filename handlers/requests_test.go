package handlers

import (
	"testing"

	"github.com/shopmill/shopmill-backend-go/validation"
)

func hasIssue(issues []validation.FieldIssue, field string) bool {
	for _, issue := range issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

func TestCreateUserRequestValidation(t *testing.T) {
	valid := CreateUserRequest{Name: "A", Email: "a@a.com", Password: "123456"}
	if issues := validation.Validate(valid); issues != nil {
		t.Fatalf("valid payload rejected: %+v", issues)
	}

	short := CreateUserRequest{Name: "A", Email: "a@a.com", Password: "123"}
	if issues := validation.Validate(short); !hasIssue(issues, "password") {
		t.Errorf("short password accepted: %+v", issues)
	}

	badEmail := CreateUserRequest{Name: "A", Email: "nope", Password: "123456"}
	if issues := validation.Validate(badEmail); !hasIssue(issues, "email") {
		t.Errorf("bad email accepted: %+v", issues)
	}
}

func TestCreateProductRequestValidation(t *testing.T) {
	valid := CreateProductRequest{
		Name:          "Chair",
		Category:      "furniture",
		Price:         49.99,
		Size:          []string{"M"},
		Colors:        []string{"oak"},
		TotalQuantity: 5,
	}
	if issues := validation.Validate(valid); issues != nil {
		t.Fatalf("valid payload rejected: %+v", issues)
	}

	negative := valid
	negative.Price = -5
	if issues := validation.Validate(negative); !hasIssue(issues, "price") {
		t.Errorf("negative price accepted: %+v", issues)
	}

	badImage := valid
	badImage.Images = []string{"not a url"}
	if issues := validation.Validate(badImage); !hasIssue(issues, "images[0]") {
		t.Errorf("invalid image URL accepted: %+v", issues)
	}
}

func TestUpdateProductRequestPartial(t *testing.T) {
	// Empty update carries no issues; only present fields are checked.
	if issues := validation.Validate(UpdateProductRequest{}); issues != nil {
		t.Fatalf("empty update rejected: %+v", issues)
	}

	negative := -5.0
	if issues := validation.Validate(UpdateProductRequest{Price: &negative}); !hasIssue(issues, "price") {
		t.Errorf("negative price accepted: %+v", issues)
	}
}

func TestCreateReviewRequestValidation(t *testing.T) {
	if issues := validation.Validate(CreateReviewRequest{Rating: 5, Message: "great"}); issues != nil {
		t.Fatalf("valid payload rejected: %+v", issues)
	}

	if issues := validation.Validate(CreateReviewRequest{Rating: 6, Message: "x"}); !hasIssue(issues, "rating") {
		t.Errorf("rating above 5 accepted: %+v", issues)
	}
	if issues := validation.Validate(CreateReviewRequest{Rating: 1}); !hasIssue(issues, "message") {
		t.Errorf("missing message accepted: %+v", issues)
	}
}

func TestUpdateOrderRequestStatusEnum(t *testing.T) {
	good := "shipping"
	if issues := validation.Validate(UpdateOrderRequest{Status: &good}); issues != nil {
		t.Fatalf("valid status rejected: %+v", issues)
	}

	bad := "teleported"
	if issues := validation.Validate(UpdateOrderRequest{Status: &bad}); !hasIssue(issues, "status") {
		t.Errorf("unknown status accepted: %+v", issues)
	}
}
