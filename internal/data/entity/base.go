package entity

// Base holds the serial primary key shared by every table
type Base struct {
	ID int64 `db:"id"`
}
