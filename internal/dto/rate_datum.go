package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// CreateRateDatumRequest records that at Date, 1 RefCurrencyID is worth
// Amount RefAmountCurrencyID.
type CreateRateDatumRequest struct {
	Amount              string  `json:"amount" binding:"required,decimal_string"`
	RefCurrencyID       string  `json:"refCurrencyId" binding:"required,uuid"`
	RefAmountCurrencyID string  `json:"refAmountCurrencyId" binding:"required,uuid"`
	Date                *string `json:"date" binding:"omitempty,epoch_ms"`
}

// RateDatumResponse defines the data returned for a rate datum.
type RateDatumResponse struct {
	RateDatumID         string    `json:"rateDatumId"`
	Amount              string    `json:"amount"`
	RefCurrencyID       string    `json:"refCurrencyId"`
	RefAmountCurrencyID string    `json:"refAmountCurrencyId"`
	Date                string    `json:"date"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ListRateDatumsParams holds the paging query parameters of the datum listing.
type ListRateDatumsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// NearestRateDatumsParams selects the instant the nearest datums are measured from.
type NearestRateDatumsParams struct {
	Date string `form:"date" binding:"required,epoch_ms"`
}

// ListRateDatumsResponse is one page of datums, newest first.
type ListRateDatumsResponse struct {
	RateDatums []RateDatumResponse `json:"rateDatums"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

// ToRateDatumResponse converts a domain.RateDatum to RateDatumResponse DTO
func ToRateDatumResponse(d *domain.RateDatum) RateDatumResponse {
	return RateDatumResponse{
		RateDatumID:         d.RateDatumID,
		Amount:              d.Amount.String(),
		RefCurrencyID:       d.RefCurrencyID,
		RefAmountCurrencyID: d.RefAmountCurrencyID,
		Date:                EpochString(d.Date),
		CreatedAt:           d.CreatedAt,
	}
}

// ToListRateDatumsResponse converts a page of datums.
func ToListRateDatumsResponse(datums []domain.RateDatum, nextToken *string) ListRateDatumsResponse {
	res := ListRateDatumsResponse{
		RateDatums: make([]RateDatumResponse, len(datums)),
		NextToken:  nextToken,
	}
	for i := range datums {
		res.RateDatums[i] = ToRateDatumResponse(&datums[i])
	}
	return res
}
