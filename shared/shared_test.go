package shared_test

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"grandresort/shared"
	"grandresort/shared/constant"
	"grandresort/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "maybe",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
		Internal string
	}

	fields := shared.TransformFields(update{Name: "Deluxe Suite"}, "staff-1")

	if fields["name"] != "Deluxe Suite" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}

	if _, ok := fields["capacity"]; ok {
		t.Error("zero-valued field should be skipped")
	}

	if _, ok := fields["Internal"]; ok {
		t.Error("untagged field should be skipped")
	}

	if fields[constant.FieldModifiedBy] != "staff-1" {
		t.Errorf("expected modified_by stamp, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at stamp")
	}
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("room-1", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "room-1",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room:get", "room-1"); got != "room:get:room-1" {
		t.Errorf("unexpected key %q", got)
	}

	if got := shared.BuildCacheKey("room:available"); got != "room:available" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Limit: 10, Page: 1}
	filter := shared.FilterByID("room-1", "id", "rooms")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if first != second {
		t.Errorf("same query must produce the same key: %q vs %q", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Limit: 20, Page: 1}, filter)
	if first == other {
		t.Error("different queries must produce different keys")
	}
}

func TestNewBookingReference(t *testing.T) {
	shape := regexp.MustCompile(`^GR-\d{6}$`)

	for range 10 {
		ref := shared.NewBookingReference()
		if !shape.MatchString(ref) {
			t.Errorf("unexpected reference %q", ref)
		}
	}
}

func boolPtr(b bool) *bool {
	return &b
}
