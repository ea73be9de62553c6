package model

// ListingType — дискриминатор листинга: определяет, какая детальная таблица к нему привязана.
type ListingType string

const (
	ListingTypeItem    ListingType = "item"
	ListingTypeLodging ListingType = "lodging"
	ListingTypeEmpty   ListingType = "empty"
)

func (t ListingType) IsValid() bool {
	switch t {
	case ListingTypeItem, ListingTypeLodging, ListingTypeEmpty:
		return true
	}
	return false
}

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSuspended ListingStatus = "suspended"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusClosed    ListingStatus = "closed"
	ListingStatusRejected  ListingStatus = "rejected"
	ListingStatusSpam      ListingStatus = "spam"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusActive, ListingStatusSuspended, ListingStatusSold,
		ListingStatusClosed, ListingStatusRejected, ListingStatusSpam:
		return true
	}
	return false
}

// SaleType describes how a listing changes hands.
type SaleType string

const (
	SaleTypeSell  SaleType = "sell"
	SaleTypeRent  SaleType = "rent"
	SaleTypeBook  SaleType = "book"
	SaleTypeTrade SaleType = "trade"
	SaleTypeFree  SaleType = "free"
)

func (s SaleType) IsValid() bool {
	switch s {
	case SaleTypeSell, SaleTypeRent, SaleTypeBook, SaleTypeTrade, SaleTypeFree:
		return true
	}
	return false
}

// Condition is the physical state of an item.
type Condition string

const (
	ConditionNA         Condition = "n/a"
	ConditionNew        Condition = "new"
	ConditionExcellent  Condition = "excellent"
	ConditionVeryGood   Condition = "very good"
	ConditionGood       Condition = "good"
	ConditionAcceptable Condition = "acceptable"
	ConditionDamaged    Condition = "damaged"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNA, ConditionNew, ConditionExcellent, ConditionVeryGood,
		ConditionGood, ConditionAcceptable, ConditionDamaged:
		return true
	}
	return false
}

type LodgingType string

const (
	LodgingTypeHotel  LodgingType = "hotel"
	LodgingTypeAirbnb LodgingType = "airbnb"
	LodgingTypeCruise LodgingType = "cruise"
)

func (t LodgingType) IsValid() bool {
	switch t {
	case LodgingTypeHotel, LodgingTypeAirbnb, LodgingTypeCruise:
		return true
	}
	return false
}
