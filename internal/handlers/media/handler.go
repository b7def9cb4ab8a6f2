package media

import (
	"net/http"
	"summit/infras/otel"
	"summit/internal/domains/media/model"
	"summit/internal/domains/media/model/dto"
	"summit/internal/domains/media/service"
	reviewModel "summit/internal/domains/review/model"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	"summit/shared/validator"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formCaption = "caption"

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/photos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadPhoto)
		routerGroup.Get("/", handler.GetPhotos)
		routerGroup.Delete("/{id}", handler.DeletePhoto)
	})
}

// UploadPhoto stores an image for an adventure, gear provider, guide or porter page.
// @Summary Upload a photo
// @Description Only the owner of the page or an administrator can upload. PNG, JPEG and WebP up to 5 MB.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param owner_type formData string true "adventure, gear_provider, guide or porter"
// @Param owner_id formData string true "Owner ID"
// @Param caption formData string false "Caption"
// @Success 201 {object} response.Data[dto.PhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		OwnerType: r.FormValue(model.FieldOwnerType),
		OwnerID:   r.FormValue(model.FieldOwnerID),
		Caption:   r.FormValue(formCaption),
		File:      fileHeader,
		Content:   file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload")

		response.WithError(w, err)

		return
	}

	photo, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo uploaded for " + req.OwnerType + " " + req.OwnerID)

	response.WithJSON(w, http.StatusCreated, photo)
}

// GetPhotos lists the photos of one page.
// @Summary Get photos
// @Tags Media
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param owner_type query string true "adventure, gear_provider, guide or porter"
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} response.Data[dto.GetPhotosResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos [get]
func (handler *Handler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	owner, err := reviewModel.NewTarget(query.Get(model.FieldOwnerType), query.Get(model.FieldOwnerID))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	photos, err := handler.service.GetAll(ctx, owner, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, photos)
}

// DeletePhoto removes a photo and its stored file.
// @Summary Delete a photo
// @Tags Media
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}
