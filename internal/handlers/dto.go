package handlers

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"time"

	"Marketplace/internal/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// hexID — UUID в виде 32 hex-символов без дефисов.
type hexID uuid.UUID

func (id hexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(id[:]))
}

func optHexID(id *uuid.UUID) *hexID {
	if id == nil {
		return nil
	}
	h := hexID(*id)
	return &h
}

// date — дата без времени, YYYY-MM-DD.
type date time.Time

func (d date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateLayout))
}

func optTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// rawBlob returns nil for an absent or SQL NULL blob.
func rawBlob(j datatypes.JSON) json.RawMessage {
	if len(j) == 0 || bytes.Equal(j, []byte("null")) {
		return nil
	}
	return json.RawMessage(j)
}

type listingDTO struct {
	ID                hexID   `json:"id"`
	CommunityID       hexID   `json:"community_id"`
	ListedByID        hexID   `json:"listed_by_id"`
	ListedByAlias     *string `json:"listed_by_alias,omitempty"`
	CreatedOn         string  `json:"created_on"`
	ListedOn          *string `json:"listed_on"`
	ClosedOn          *string `json:"closed_on"`
	Status            string  `json:"status"`
	ListingType       string  `json:"listing_type"`
	SaleType          string  `json:"sale_type"`
	ListingPriceCents int     `json:"listing_price_cents"`
	ListingTitle      string  `json:"listing_title"`
	ListingDesc       *string `json:"listing_desc"`
	AvailableCount    int     `json:"available_count"`
}

type itemDTO struct {
	ID              hexID           `json:"id"`
	SourceItemID    *hexID          `json:"source_item_id"`
	ItemName        string          `json:"item_name"`
	Condition       string          `json:"condition"`
	Photos          json.RawMessage `json:"photos"`
	ShippingZipcode string          `json:"shipping_zipcode"`
	ItemDetails     json.RawMessage `json:"item_details"`

	// поля source item — только если он есть
	SourceItemName    *string         `json:"source_item_name,omitempty"`
	CategoryID        *hexID          `json:"category_id,omitempty"`
	SourceItemDetails json.RawMessage `json:"source_item_details,omitempty"`
	CategoryPath      []string        `json:"category_path,omitempty"`
}

type lodgingDTO struct {
	ID             hexID           `json:"id"`
	LodgingName    string          `json:"lodging_name"`
	Address        string          `json:"address"`
	StartDate      date            `json:"start_date"`
	EndDate        date            `json:"end_date"`
	LodgingType    string          `json:"lodging_type"`
	LodgingURL     *string         `json:"lodging_url"`
	LodgingDetails json.RawMessage `json:"lodging_details"`
}

// ListingResponse — тело ответа GET и create: listing и, для item/lodging, детали.
type ListingResponse struct {
	Listing listingDTO  `json:"listing"`
	Item    *itemDTO    `json:"item,omitempty"`
	Lodging *lodgingDTO `json:"lodging,omitempty"`
}

func newListingResponse(v *service.ListingView) ListingResponse {
	l := v.Listing
	resp := ListingResponse{Listing: listingDTO{
		ID:                hexID(l.ID),
		CommunityID:       hexID(l.CommunityID),
		ListedByID:        hexID(l.ListedByID),
		ListedByAlias:     v.ListedByAlias,
		CreatedOn:         l.CreatedOn.UTC().Format(time.RFC3339),
		ListedOn:          optTimestamp(l.ListedOn),
		ClosedOn:          optTimestamp(l.ClosedOn),
		Status:            string(l.Status),
		ListingType:       string(l.ListingType),
		SaleType:          string(l.SaleType),
		ListingPriceCents: l.ListingPriceCents,
		ListingTitle:      l.ListingTitle,
		ListingDesc:       l.ListingDesc,
		AvailableCount:    l.AvailableCount,
	}}

	switch d := v.Detail.(type) {
	case *service.ItemDetail:
		resp.Item = &itemDTO{
			ID:                hexID(d.ID),
			SourceItemID:      optHexID(d.SourceItemID),
			ItemName:          d.ItemName,
			Condition:         string(d.Condition),
			Photos:            rawBlob(d.Photos),
			ShippingZipcode:   d.ShippingZipcode,
			ItemDetails:       rawBlob(d.ItemDetails),
			SourceItemName:    d.SourceItemName,
			CategoryID:        optHexID(d.CategoryID),
			SourceItemDetails: rawBlob(d.SourceItemDetails),
			CategoryPath:      d.CategoryPath,
		}
	case *service.LodgingDetail:
		resp.Lodging = &lodgingDTO{
			ID:             hexID(d.ID),
			LodgingName:    d.LodgingName,
			Address:        d.Address,
			StartDate:      date(d.StartDate),
			EndDate:        date(d.EndDate),
			LodgingType:    string(d.LodgingType),
			LodgingURL:     d.LodgingURL,
			LodgingDetails: rawBlob(d.LodgingDetails),
		}
	}
	return resp
}
