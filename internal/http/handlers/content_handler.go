// Admin content HTTP handlers.
//
// This file exposes CRUD for the curated site content, all behind the admin
// bearer token:
//   - /admin/gallery, /admin/videos, /admin/social, /admin/shows
//     GET (list) and POST (create)
//   - /admin/{kind}/{id}   PUT (replace) and DELETE
//   - /admin/shows/{id}/active   PUT (show or hide on the public calendar)
//
// Create answers 201 with the stored row, update 200, delete 204. Invalid
// input is 400 with code invalid_content and a message naming the field.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupsite/promo-backend/internal/services"
)

// SetShowActiveRequest toggles a show's visibility.
type SetShowActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required" example:"false"`
}

// contentError translates a ContentService error.
func contentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidContent):
		fail(c, http.StatusBadRequest, ErrCodeInvalidContent, err.Error())
	case errors.Is(err, services.ErrContentNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "content not found")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// bindContent binds the JSON body into in, answering 400 on malformed JSON.
func bindContent(c *gin.Context, in any) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return false
	}
	return true
}

//
// Gallery
//

// AdminListGallery godoc
// @ID       adminListGallery
// @Summary  List gallery images
// @Tags     Admin content
// @Security BearerAuth
// @Produce  json
// @Success  200  {object}  handlers.ListGalleryResponse
// @Failure  401  {object}  handlers.ErrorResponse
// @Router   /admin/gallery [get]
func (h *Handlers) AdminListGallery(c *gin.Context) { h.ListGallery(c) }

// AdminCreateGallery godoc
// @ID       adminCreateGallery
// @Summary  Add a gallery image
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body  body  services.GalleryInput  true  "Image"
// @Success  201  {object}  domain.GalleryImage
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  401  {object}  handlers.ErrorResponse
// @Router   /admin/gallery [post]
func (h *Handlers) AdminCreateGallery(c *gin.Context) {
	var in services.GalleryInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.CreateGallery(c.Request.Context(), in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// AdminUpdateGallery godoc
// @ID       adminUpdateGallery
// @Summary  Replace a gallery image
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path  string                 true  "Image ID (UUID)"  format(uuid)
// @Param    body  body  services.GalleryInput  true  "Image"
// @Success  200  {object}  domain.GalleryImage
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/gallery/{id} [put]
func (h *Handlers) AdminUpdateGallery(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var in services.GalleryInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.UpdateGallery(c.Request.Context(), id, in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// AdminDeleteGallery godoc
// @ID       adminDeleteGallery
// @Summary  Delete a gallery image
// @Tags     Admin content
// @Security BearerAuth
// @Param    id  path  string  true  "Image ID (UUID)"  format(uuid)
// @Success  204  {string}  string  "No Content"
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/gallery/{id} [delete]
func (h *Handlers) AdminDeleteGallery(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contentSvc.DeleteGallery(c.Request.Context(), id); err != nil {
		contentError(c, err)
		return
	}
	noContent(c)
}

//
// Videos
//

// AdminListVideos godoc
// @ID       adminListVideos
// @Summary  List videos
// @Tags     Admin content
// @Security BearerAuth
// @Produce  json
// @Success  200  {object}  handlers.ListVideosResponse
// @Router   /admin/videos [get]
func (h *Handlers) AdminListVideos(c *gin.Context) { h.ListVideos(c) }

// AdminCreateVideo godoc
// @ID       adminCreateVideo
// @Summary  Add a video
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body  body  services.VideoInput  true  "Video"
// @Success  201  {object}  domain.Video
// @Failure  400  {object}  handlers.ErrorResponse
// @Router   /admin/videos [post]
func (h *Handlers) AdminCreateVideo(c *gin.Context) {
	var in services.VideoInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.CreateVideo(c.Request.Context(), in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// AdminUpdateVideo godoc
// @ID       adminUpdateVideo
// @Summary  Replace a video
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path  string               true  "Video ID (UUID)"  format(uuid)
// @Param    body  body  services.VideoInput  true  "Video"
// @Success  200  {object}  domain.Video
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/videos/{id} [put]
func (h *Handlers) AdminUpdateVideo(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var in services.VideoInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.UpdateVideo(c.Request.Context(), id, in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// AdminDeleteVideo godoc
// @ID       adminDeleteVideo
// @Summary  Delete a video
// @Tags     Admin content
// @Security BearerAuth
// @Param    id  path  string  true  "Video ID (UUID)"  format(uuid)
// @Success  204  {string}  string  "No Content"
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/videos/{id} [delete]
func (h *Handlers) AdminDeleteVideo(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contentSvc.DeleteVideo(c.Request.Context(), id); err != nil {
		contentError(c, err)
		return
	}
	noContent(c)
}

//
// Social posts
//

// AdminListSocial godoc
// @ID       adminListSocial
// @Summary  List social posts
// @Tags     Admin content
// @Security BearerAuth
// @Produce  json
// @Success  200  {object}  handlers.ListSocialResponse
// @Router   /admin/social [get]
func (h *Handlers) AdminListSocial(c *gin.Context) { h.ListSocial(c) }

// AdminCreateSocial godoc
// @ID       adminCreateSocial
// @Summary  Add a social post
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body  body  services.SocialInput  true  "Post"
// @Success  201  {object}  domain.SocialPost
// @Failure  400  {object}  handlers.ErrorResponse
// @Router   /admin/social [post]
func (h *Handlers) AdminCreateSocial(c *gin.Context) {
	var in services.SocialInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.CreateSocial(c.Request.Context(), in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// AdminUpdateSocial godoc
// @ID       adminUpdateSocial
// @Summary  Replace a social post
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path  string                true  "Post ID (UUID)"  format(uuid)
// @Param    body  body  services.SocialInput  true  "Post"
// @Success  200  {object}  domain.SocialPost
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/social/{id} [put]
func (h *Handlers) AdminUpdateSocial(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var in services.SocialInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.UpdateSocial(c.Request.Context(), id, in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// AdminDeleteSocial godoc
// @ID       adminDeleteSocial
// @Summary  Delete a social post
// @Tags     Admin content
// @Security BearerAuth
// @Param    id  path  string  true  "Post ID (UUID)"  format(uuid)
// @Success  204  {string}  string  "No Content"
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/social/{id} [delete]
func (h *Handlers) AdminDeleteSocial(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contentSvc.DeleteSocial(c.Request.Context(), id); err != nil {
		contentError(c, err)
		return
	}
	noContent(c)
}

//
// Shows
//

// AdminListShows godoc
// @ID       adminListShows
// @Summary  List all shows
// @Description Includes hidden shows, in display order.
// @Tags     Admin content
// @Security BearerAuth
// @Produce  json
// @Success  200  {object}  handlers.ListShowsResponse
// @Router   /admin/shows [get]
func (h *Handlers) AdminListShows(c *gin.Context) {
	items, err := h.contentSvc.ListShows(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListShowsResponse{Shows: nonNil(items)})
}

// AdminCreateShow godoc
// @ID       adminCreateShow
// @Summary  Add a show
// @Description New shows are active unless is_active is false.
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body  body  services.ShowInput  true  "Show"
// @Success  201  {object}  domain.Show
// @Failure  400  {object}  handlers.ErrorResponse
// @Router   /admin/shows [post]
func (h *Handlers) AdminCreateShow(c *gin.Context) {
	var in services.ShowInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.CreateShow(c.Request.Context(), in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// AdminUpdateShow godoc
// @ID       adminUpdateShow
// @Summary  Replace a show
// @Description Visibility is kept unless is_active is sent.
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path  string              true  "Show ID (UUID)"  format(uuid)
// @Param    body  body  services.ShowInput  true  "Show"
// @Success  200  {object}  domain.Show
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/shows/{id} [put]
func (h *Handlers) AdminUpdateShow(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var in services.ShowInput
	if !bindContent(c, &in) {
		return
	}
	item, err := h.contentSvc.UpdateShow(c.Request.Context(), id, in)
	if err != nil {
		contentError(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// AdminSetShowActive godoc
// @ID       adminSetShowActive
// @Summary  Show or hide a show
// @Tags     Admin content
// @Security BearerAuth
// @Accept   json
// @Param    id    path  string                         true  "Show ID (UUID)"  format(uuid)
// @Param    body  body  handlers.SetShowActiveRequest  true  "Visibility"
// @Success  204  {string}  string  "No Content"
// @Failure  400  {object}  handlers.ErrorResponse
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/shows/{id}/active [put]
func (h *Handlers) AdminSetShowActive(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req SetShowActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "is_active required")
		return
	}
	if err := h.contentSvc.SetShowActive(c.Request.Context(), id, *req.IsActive); err != nil {
		contentError(c, err)
		return
	}
	noContent(c)
}

// AdminDeleteShow godoc
// @ID       adminDeleteShow
// @Summary  Delete a show
// @Tags     Admin content
// @Security BearerAuth
// @Param    id  path  string  true  "Show ID (UUID)"  format(uuid)
// @Success  204  {string}  string  "No Content"
// @Failure  404  {object}  handlers.ErrorResponse
// @Router   /admin/shows/{id} [delete]
func (h *Handlers) AdminDeleteShow(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.contentSvc.DeleteShow(c.Request.Context(), id); err != nil {
		contentError(c, err)
		return
	}
	noContent(c)
}
