package utils

import "testing"

func TestValidateStruct_JSONFieldNames(t *testing.T) {
	type body struct {
		Name  string  `json:"dish_name" validate:"required"`
		Price float64 `json:"price" validate:"gte=0,lte=99999999.99"`
	}

	tests := []struct {
		name string
		in   body
		want map[string]string
	}{
		{name: "valid", in: body{Name: "Уха", Price: 99999999.99}},
		{name: "missing name", in: body{Price: 1}, want: map[string]string{"dish_name": "This field is required"}},
		{name: "negative price", in: body{Name: "Уха", Price: -1}, want: map[string]string{"price": "Must be at least 0"}},
		{name: "price overflows column", in: body{Name: "Уха", Price: 100000000}, want: map[string]string{"price": "Must be at most 99999999.99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateStruct(&tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", got, tt.want)
			}
			for field, msg := range tt.want {
				if got[field] != msg {
					t.Errorf("%s = %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"price": "b", "dish_name": "a"})
	if got != "dish_name: a; price: b" {
		t.Errorf("got %q", got)
	}
}
