package inbound

import (
	"github.com/creatorconnect/server/internal/asset/usecase"
	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the asset workflows.
type HTTPEndpoint struct {
	uc uc
}

// Upload stores a media file for the authenticated user.
// @Summary Upload asset
// @Description Uploads an image or video (multipart form: title, visibility, file) and returns the stored asset.
// @Tags Assets
// @Accept mpfd
// @Produce json
// @Param title formData string true "Asset title"
// @Param visibility formData string true "public or private"
// @Param file formData file true "Media file (max 15MB)"
// @Success 201 {object} router.successResponse{data=UploadResponse} "Asset uploaded"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/assets [post]
func (h *HTTPEndpoint) Upload(r *router.Request) (any, error) {
	identity := router.GetIdentity(r.Context())
	if identity == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	file, header, err := r.MultipartFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	resp, err := h.uc.Upload(r.Context(), usecase.UploadInput{
		OwnerID:    identity.ID,
		OwnerName:  identity.Name,
		Title:      r.FormValue("title"),
		Visibility: r.FormValue("visibility"),
		FileName:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		Size:       header.Size,
		File:       file,
	})
	if err != nil {
		return nil, err
	}

	return UploadResponse{AssetResponse: toAssetResponse(resp.Asset)}, nil
}

// ListPublic returns every public asset, newest first.
// @Summary List public assets
// @Description Lists all public assets, newest first. No authentication required.
// @Tags Assets
// @Produce json
// @Success 200 {object} router.successResponse{data=PublicAssetsResponse} "Public assets"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/assets/public [get]
func (h *HTTPEndpoint) ListPublic(r *router.Request) (any, error) {
	resp, err := h.uc.ListPublic(r.Context())
	if err != nil {
		return nil, err
	}

	return PublicAssetsResponse(toAssetResponses(resp.Assets)), nil
}

// ListMine returns the authenticated user's assets, newest first.
// @Summary List my assets
// @Description Lists the caller's assets, public and private, newest first.
// @Tags Assets
// @Produce json
// @Success 200 {object} router.successResponse{data=MyAssetsResponse} "Caller's assets"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/assets/me [get]
func (h *HTTPEndpoint) ListMine(r *router.Request) (any, error) {
	identity := router.GetIdentity(r.Context())
	if identity == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	resp, err := h.uc.ListMine(r.Context(), usecase.ListMineInput{OwnerID: identity.ID})
	if err != nil {
		return nil, err
	}

	return MyAssetsResponse(toAssetResponses(resp.Assets)), nil
}

// Delete removes an asset the caller owns.
// @Summary Delete asset
// @Description Deletes the asset and its stored file. Only the owner may delete an asset.
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} router.successResponse{data=DeleteResponse} "Asset deleted"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not the owner"
// @Failure 404 {object} router.errorResponse "Asset not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/assets/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	identity := router.GetIdentity(r.Context())
	if identity == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	resp, err := h.uc.Delete(r.Context(), usecase.DeleteInput{
		ID:      r.GetParam("id"),
		OwnerID: identity.ID,
	})
	if err != nil {
		return nil, err
	}

	return DeleteResponse{ID: resp.ID}, nil
}
