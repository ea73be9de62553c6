package service

import "Marketplace/internal/model"

func ValidateListingStatus(v string) error {
	if !model.ListingStatus(v).IsValid() {
		return NewValidationError("status", "Listing status doesn't exist")
	}
	return nil
}

func ValidateListingType(v string) error {
	if !model.ListingType(v).IsValid() {
		return NewValidationError("listing_type", "Listing type doesn't exist")
	}
	return nil
}

func ValidateSaleType(v string) error {
	if !model.SaleType(v).IsValid() {
		return NewValidationError("sale_type", "Sale type doesn't exist")
	}
	return nil
}

func ValidateCondition(v string) error {
	if !model.Condition(v).IsValid() {
		return NewValidationError("condition", "Condition doesn't exist")
	}
	return nil
}

func ValidateLodgingType(v string) error {
	if !model.LodgingType(v).IsValid() {
		return NewValidationError("lodging_type", "Lodging type doesn't exist")
	}
	return nil
}

// collect складывает результат validate-функции в общий ValidationError.
func collect(dst *ValidationError, err error) {
	if v, ok := err.(*ValidationError); ok {
		for f, msgs := range v.Fields {
			for _, m := range msgs {
				dst.Add(f, m)
			}
		}
	}
}
