package validation

import (
	"testing"
)

type createPayload struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Image    string  `json:"image" validate:"omitempty,url"`
}

type updatePayload struct {
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Email *string  `json:"email" validate:"omitempty,email"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
}

func issueFor(issues []FieldIssue, field string) *FieldIssue {
	for i := range issues {
		if issues[i].Field == field {
			return &issues[i]
		}
	}
	return nil
}

func TestValidateCreateOK(t *testing.T) {
	payload := createPayload{Name: "A", Email: "a@a.com", Password: "123456", Price: 9.5}
	if issues := Validate(payload); issues != nil {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestValidateCreateFailures(t *testing.T) {
	payload := createPayload{Email: "not-an-email", Password: "123", Price: -5, Image: "not a url"}
	issues := Validate(payload)
	if issues == nil {
		t.Fatal("expected issues")
	}

	for _, field := range []string{"name", "email", "password", "price", "image"} {
		if issueFor(issues, field) == nil {
			t.Errorf("missing issue for field %q in %+v", field, issues)
		}
	}
	if issue := issueFor(issues, "price"); issue != nil && issue.Message != "must be greater than 0" {
		t.Errorf("price message = %q", issue.Message)
	}
}

func TestValidatePartialUpdate(t *testing.T) {
	// Absent optional fields are not issues.
	if issues := Validate(updatePayload{}); issues != nil {
		t.Fatalf("empty update should be valid, got %+v", issues)
	}

	bad := "nope"
	negative := -1.0
	issues := Validate(updatePayload{Email: &bad, Price: &negative})
	if issueFor(issues, "email") == nil || issueFor(issues, "price") == nil {
		t.Fatalf("expected email and price issues, got %+v", issues)
	}
}

func TestIDIssue(t *testing.T) {
	if issues := IDIssue("product", "507f1f77bcf86cd799439011"); issues != nil {
		t.Fatalf("valid id rejected: %+v", issues)
	}

	issues := IDIssue("product", "not-an-id")
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %+v", issues)
	}
	if issues[0].Field != "id" || issues[0].Message != "Invalid product ID" {
		t.Errorf("unexpected issue %+v", issues[0])
	}
}
