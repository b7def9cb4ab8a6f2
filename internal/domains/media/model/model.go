package model

import "summit/shared/model"

const (
	TableName  = "photos"
	EntityName = "photo"

	FieldID        = "id"
	FieldOwnerType = "owner_type"
	FieldOwnerID   = "owner_id"
)

// Photo is an image shown on an adventure, gear provider, guide or porter page.
type Photo struct {
	ID          string `db:"id"`
	OwnerType   string `db:"owner_type"`
	OwnerID     string `db:"owner_id"`
	ObjectKey   string `db:"object_key"`
	URL         string `db:"url"`
	Caption     string `db:"caption"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	model.Metadata
}
