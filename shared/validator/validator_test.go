package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"summit/shared/failure"
	"summit/shared/validator"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type tripRequest struct {
	AdventureID string          `json:"adventure_id" validate:"required,uuid"`
	StartDate   string          `json:"start_date"   validate:"required,date"`
	GroupSize   int             `json:"group_size"   validate:"gte=1,lte=30"`
	Currency    string          `json:"currency"     validate:"required,currency"`
	Deposit     decimal.Decimal `json:"deposit"      validate:"gte=0"`
	Payment     decimal.Decimal `json:"payment"      validate:"gt=0"`
	Level       string          `json:"level"        validate:"omitempty,oneof=easy moderate strenuous"`
}

func validTrip() tripRequest {
	return tripRequest{
		AdventureID: "0b8f5a8e-4a9b-4a39-9d5b-0f2d0c3b7c11",
		StartDate:   "2026-11-02",
		GroupSize:   4,
		Currency:    "NPR",
		Payment:     decimal.RequireFromString("0.01"),
		Level:       "moderate",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *tripRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*tripRequest) {}},
		{name: "missing adventure", mutate: func(r *tripRequest) { r.AdventureID = "" }, wantMsg: "AdventureID is required"},
		{name: "adventure not uuid", mutate: func(r *tripRequest) { r.AdventureID = "everest" }, wantMsg: "AdventureID must be a valid UUID"},
		{name: "bad date", mutate: func(r *tripRequest) { r.StartDate = "02/11/2026" }, wantMsg: "StartDate must be a date formatted as YYYY-MM-DD"},
		{name: "group too small", mutate: func(r *tripRequest) { r.GroupSize = 0 }, wantMsg: "GroupSize must be greater than or equal to 1"},
		{name: "group too large", mutate: func(r *tripRequest) { r.GroupSize = 31 }, wantMsg: "GroupSize must be less than or equal to 30"},
		{name: "lower case currency", mutate: func(r *tripRequest) { r.Currency = "npr" }, wantMsg: "Currency must be a three letter currency code"},
		{name: "negative deposit", mutate: func(r *tripRequest) { r.Deposit = decimal.NewFromInt(-1) }, wantMsg: "Deposit must be greater than or equal to 0"},
		{name: "zero payment", mutate: func(r *tripRequest) { r.Payment = decimal.Zero }, wantMsg: "Payment must be greater than 0"},
		{name: "unknown level", mutate: func(r *tripRequest) { r.Level = "extreme" }, wantMsg: "Level must be one of easy moderate strenuous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTrip()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-02-28", "date"))
	assert.Error(t, validator.ValidateVar("2026-02-30", "date"))
	assert.NoError(t, validator.ValidateVar("USD", "currency"))
	assert.Error(t, validator.ValidateVar("US", "currency"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"adventure_id":"0b8f5a8e-4a9b-4a39-9d5b-0f2d0c3b7c11","start_date":"2026-11-02","group_size":2,"currency":"EUR","payment":12.5}`,
		},
		{
			name:     "invalid field",
			jsonBody: `{"adventure_id":"0b8f5a8e-4a9b-4a39-9d5b-0f2d0c3b7c11","start_date":"soon","group_size":2,"currency":"EUR"}`,
			wantErr:  true,
		},
		{
			name:     "unknown field",
			jsonBody: `{"adventure_id":"0b8f5a8e-4a9b-4a39-9d5b-0f2d0c3b7c11","start_date":"2026-11-02","group_size":2,"currency":"EUR","price":1}`,
			wantErr:  true,
		},
		{
			name:     "zero payment",
			jsonBody: `{"adventure_id":"0b8f5a8e-4a9b-4a39-9d5b-0f2d0c3b7c11","start_date":"2026-11-02","group_size":2,"currency":"EUR","payment":0}`,
			wantErr:  true,
		},
		{
			name:     "malformed body",
			jsonBody: `{"adventure_id":}`,
			wantErr:  true,
		},
		{
			name:     "empty body",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data tripRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

type photoUpload struct {
	File *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestValidateStruct_Upload(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "summit.jpg",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     size,
		}
	}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantMsg string
	}{
		{name: "jpeg", file: header("image/jpeg", 512*1024)},
		{name: "missing", wantMsg: "File is required"},
		{name: "pdf", file: header("application/pdf", 10), wantMsg: "File must be one of image/png image/jpeg"},
		{name: "too large", file: header("image/png", 2*1024*1024), wantMsg: "File must not be larger than 1 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&photoUpload{File: tt.file})

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
