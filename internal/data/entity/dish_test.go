package entity

import (
	"encoding/json"
	"testing"
)

func TestParseDishCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    DishCategory
		wantErr bool
	}{
		{in: "Десерт", want: CategoryDessert},
		{in: "Dessert", want: CategoryDessert},
		{in: "Основное блюдо", want: CategoryMainCourse},
		{in: "MainCourse", want: CategoryMainCourse},
		{in: "ColdDrink", want: CategoryColdDrink},
		{in: "dessert", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDishCategory(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDishCategory_JSON(t *testing.T) {
	var body struct {
		Category DishCategory `json:"category"`
	}
	if err := json.Unmarshal([]byte(`{"category":"Soup"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Category != CategorySoup {
		t.Fatalf("category = %q", body.Category)
	}

	out, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"category":"Суп"}` {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"category":"Pizza"}`), &body); err == nil {
		t.Error("expected unknown category to fail")
	}
}
