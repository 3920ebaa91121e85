package entity

type Restaurant struct {
	Base
	Name        string `db:"name"`
	Address     string `db:"address"`
	Description string `db:"description"`
}

type RestaurantPatch struct {
	Name        *string
	Address     *string
	Description *string
}
