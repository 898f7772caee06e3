package models

import "github.com/shopspring/decimal"

type Location struct {
	ID      int64
	Name    string
	Address string
}

type Vehicle struct {
	ID            int64
	Name          string
	Brand         string
	Type          string
	LicensePlate  string
	Status        string
	LocationID    int64
	PricePerDay   decimal.NullDecimal
	PricePerMonth decimal.NullDecimal
	PricePerYear  decimal.NullDecimal
	// Image is the public URL of the last uploaded picture, empty until one exists.
	Image string
}
