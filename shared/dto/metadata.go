package dto

import (
	"summit/shared/constant"
	"summit/shared/model"
	"summit/shared/timezone"
)

// Metadata is the audit trail rendered on every resource, in the application timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	modifiedAt, modifiedBy := meta.ModifiedAt, meta.ModifiedBy
	if modifiedAt.IsZero() {
		modifiedAt, modifiedBy = meta.CreatedAt, meta.CreatedBy
	}

	m.CreatedAt = timezone.Format(meta.CreatedAt, constant.DateFormat)
	m.CreatedBy = meta.CreatedBy
	m.ModifiedAt = timezone.Format(modifiedAt, constant.DateFormat)
	m.ModifiedBy = modifiedBy
}
