package dto

import (
	"mime/multipart"
	"path"
	"strings"
	"summit/internal/domains/media/model"
	reviewModel "summit/internal/domains/review/model"
	"summit/shared"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	gModel "summit/shared/model"
	"summit/shared/timezone"
)

type UploadPhotoRequest struct {
	OwnerType string                `validate:"required,oneof=adventure gear_provider guide porter"`
	OwnerID   string                `validate:"required"`
	Caption   string                `validate:"omitempty,max=255"`
	File      *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=5" swaggerignore:"true"`
	Content   multipart.File        `validate:"-"`
}

// ObjectKey places the file under its owner, e.g. adventure/<id>/<photo id>.jpg.
func (c *UploadPhotoRequest) ObjectKey(owner reviewModel.Target, photoID string) string {
	return path.Join(string(owner.Kind()), owner.ID(), photoID+strings.ToLower(path.Ext(c.File.Filename)))
}

func (c *UploadPhotoRequest) ToModel(id string, owner reviewModel.Target, url, user string) model.Photo {
	return model.Photo{
		ID:          id,
		OwnerType:   string(owner.Kind()),
		OwnerID:     owner.ID(),
		ObjectKey:   c.ObjectKey(owner, id),
		URL:         url,
		Caption:     c.Caption,
		ContentType: c.File.Header.Get(constant.RequestHeaderContentType),
		SizeBytes:   c.File.Size,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type PhotoResponse struct {
	ID        string `json:"id"`
	OwnerType string `json:"owner_type"`
	OwnerID   string `json:"owner_id"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.OwnerType = model.OwnerType
	r.OwnerID = model.OwnerID
	r.URL = model.URL
	r.Caption = model.Caption
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos    []PhotoResponse `json:"photos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]PhotoResponse, len(models))
	for i, m := range models {
		r.Photos[i].FromModel(m)
	}
}
