package service

import (
	"time"

	"Marketplace/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateListingInput — данные запроса на создание листинга.
// Отсутствующее поле — nil. Ошибки типов, найденные при разборе тела запроса,
// складываются в Errors; такое поле не считается отсутствующим.
type CreateListingInput struct {
	CommunityID       *uuid.UUID
	ListedByID        *uuid.UUID
	Status            *string
	ListingType       *string
	SaleType          *string
	ListingPriceCents *int
	ListingTitle      *string
	ListingDesc       *string
	AvailableCount    *int

	Item    *ItemInput
	Lodging *LodgingInput

	// ActorID — пользователь из токена запроса; nil для анонимного запроса.
	ActorID *uuid.UUID

	Errors *ValidationError
}

type ItemInput struct {
	SourceItemID    *uuid.UUID
	ItemName        *string
	Condition       *string
	Photos          datatypes.JSON
	ShippingZipcode *string
	ItemDetails     datatypes.JSON

	Errors *ValidationError
}

type LodgingInput struct {
	LodgingName    *string
	Address        *string
	StartDate      *time.Time
	EndDate        *time.Time
	LodgingType    *string
	LodgingURL     *string
	LodgingDetails datatypes.JSON

	Errors *ValidationError
}

// required добавляет "Missing data" для отсутствующего поля, если по нему ещё нет ошибки типа.
func required(v *ValidationError, field string, present bool) {
	if present {
		return
	}
	if _, ok := v.Fields[field]; ok {
		return
	}
	v.Add(field, MsgMissingField)
}

// Validate проверяет запрос целиком. Поля item/lodging проверяются только после того,
// как прошли поля листинга. Возвращает *ValidationError или nil.
func (in *CreateListingInput) Validate() error {
	v := &ValidationError{}
	v.Merge(in.Errors)

	required(v, "community_id", in.CommunityID != nil)
	required(v, "listed_by_id", in.ListedByID != nil)
	required(v, "status", in.Status != nil)
	required(v, "listing_type", in.ListingType != nil)
	required(v, "sale_type", in.SaleType != nil)
	required(v, "listing_price_cents", in.ListingPriceCents != nil)
	required(v, "listing_title", in.ListingTitle != nil)
	required(v, "available_count", in.AvailableCount != nil)

	if in.Status != nil {
		collect(v, ValidateListingStatus(*in.Status))
	}
	if in.ListingType != nil {
		collect(v, ValidateListingType(*in.ListingType))
	}
	if in.SaleType != nil {
		collect(v, ValidateSaleType(*in.SaleType))
	}
	if !v.Empty() {
		return v
	}

	switch model.ListingType(*in.ListingType) {
	case model.ListingTypeItem:
		item := in.Item
		if item == nil {
			item = &ItemInput{}
		}
		return item.Validate()
	case model.ListingTypeLodging:
		lodging := in.Lodging
		if lodging == nil {
			lodging = &LodgingInput{}
		}
		return lodging.Validate()
	}
	return nil
}

func (in *ItemInput) Validate() error {
	v := &ValidationError{}
	v.Merge(in.Errors)

	required(v, "item_name", in.ItemName != nil)
	required(v, "condition", in.Condition != nil)
	required(v, "shipping_zipcode", in.ShippingZipcode != nil)

	if in.Condition != nil {
		collect(v, ValidateCondition(*in.Condition))
	}
	if _, typed := v.Fields["photos"]; !typed && !isJSONList(NormalizeBlob(in.Photos)) {
		v.Add("photos", MsgInvalidList)
	}
	return v.OrNil()
}

func (in *LodgingInput) Validate() error {
	v := &ValidationError{}
	v.Merge(in.Errors)

	required(v, "lodging_name", in.LodgingName != nil)
	required(v, "address", in.Address != nil)
	required(v, "start_date", in.StartDate != nil)
	required(v, "end_date", in.EndDate != nil)
	required(v, "lodging_type", in.LodgingType != nil)

	if in.LodgingType != nil {
		collect(v, ValidateLodgingType(*in.LodgingType))
	}
	return v.OrNil()
}
