package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"Marketplace/internal/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const msgNull = "Field may not be null."

// args разбирает плоское JSON-тело запроса по полям.
// Ошибка типа поля записывается в errs, само поле остаётся nil.
type args struct {
	raw  map[string]json.RawMessage
	errs *service.ValidationError
}

func newArgs(raw map[string]json.RawMessage) *args {
	return &args{raw: raw, errs: &service.ValidationError{}}
}

// lookup возвращает значение поля; null считается ошибкой.
func (a *args) lookup(field string) (json.RawMessage, bool) {
	v, ok := a.raw[field]
	if !ok {
		return nil, false
	}
	if a.isNull(field) {
		a.errs.Add(field, msgNull)
		return nil, false
	}
	return v, true
}

func (a *args) str(field string) *string {
	v, ok := a.lookup(field)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		a.errs.Add(field, service.MsgInvalidString)
		return nil
	}
	return &s
}

// isNull reports whether field is present with an explicit null.
func (a *args) isNull(field string) bool {
	v, ok := a.raw[field]
	return ok && bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// optStr и optUUID — необязательные поля; null равен отсутствию поля.
func (a *args) optStr(field string) *string {
	if a.isNull(field) {
		return nil
	}
	return a.str(field)
}

func (a *args) optUUID(field string) *uuid.UUID {
	if a.isNull(field) {
		return nil
	}
	return a.uuid(field)
}

func (a *args) uuid(field string) *uuid.UUID {
	v, ok := a.lookup(field)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		a.errs.Add(field, service.MsgInvalidUUID)
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		a.errs.Add(field, service.MsgInvalidUUID)
		return nil
	}
	return &id
}

// int принимает целое число или строку с целым числом.
func (a *args) int(field string) *int {
	v, ok := a.lookup(field)
	if !ok {
		return nil
	}
	var n int
	if json.Unmarshal(v, &n) == nil {
		return &n
	}

	var f float64
	if json.Unmarshal(v, &f) == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		n = int(f)
		return &n
	}
	var s string
	if json.Unmarshal(v, &s) == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &parsed
		}
	}
	a.errs.Add(field, service.MsgInvalidInteger)
	return nil
}

func (a *args) date(field string) *time.Time {
	v, ok := a.lookup(field)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		a.errs.Add(field, service.MsgInvalidDate)
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		a.errs.Add(field, service.MsgInvalidDate)
		return nil
	}
	return &d
}

// blob возвращает сырое значение поля; null допустим и означает отсутствие.
func (a *args) blob(field string) datatypes.JSON {
	v, ok := a.raw[field]
	if !ok {
		return nil
	}
	return datatypes.JSON(bytes.TrimSpace(v))
}

func (a *args) errors() *service.ValidationError {
	if a.errs.Empty() {
		return nil
	}
	return a.errs
}

// decodeCreateListing собирает CreateListingInput из тела запроса.
func decodeCreateListing(raw map[string]json.RawMessage) service.CreateListingInput {
	l := newArgs(raw)
	in := service.CreateListingInput{
		CommunityID:       l.uuid("community_id"),
		ListedByID:        l.uuid("listed_by_id"),
		Status:            l.str("status"),
		ListingType:       l.str("listing_type"),
		SaleType:          l.str("sale_type"),
		ListingPriceCents: l.int("listing_price_cents"),
		ListingTitle:      l.str("listing_title"),
		ListingDesc:       l.optStr("listing_desc"),
		AvailableCount:    l.int("available_count"),
	}
	in.Errors = l.errors()

	it := newArgs(raw)
	in.Item = &service.ItemInput{
		SourceItemID:    it.optUUID("source_item_id"),
		ItemName:        it.str("item_name"),
		Condition:       it.str("condition"),
		Photos:          it.blob("photos"),
		ShippingZipcode: it.str("shipping_zipcode"),
		ItemDetails:     it.blob("item_details"),
	}
	in.Item.Errors = it.errors()

	lg := newArgs(raw)
	in.Lodging = &service.LodgingInput{
		LodgingName:    lg.str("lodging_name"),
		Address:        lg.str("address"),
		StartDate:      lg.date("start_date"),
		EndDate:        lg.date("end_date"),
		LodgingType:    lg.str("lodging_type"),
		LodgingURL:     lg.optStr("lodging_url"),
		LodgingDetails: lg.blob("lodging_details"),
	}
	in.Lodging.Errors = lg.errors()

	return in
}
