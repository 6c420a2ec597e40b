package inbound

import (
	"net/http"
	"time"

	"github.com/creatorconnect/server/internal/asset/entity"
)

type AssetResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	Visibility string    `json:"visibility"`
	OwnerName  string    `json:"ownerName"`
	CreatedAt  time.Time `json:"createdAt"`
	FileURL    string    `json:"fileUrl"`
}

func toAssetResponse(a entity.Asset) AssetResponse {
	return AssetResponse{
		ID:         a.ID,
		Title:      a.Title,
		FileName:   a.FileName,
		MimeType:   a.MimeType,
		Visibility: a.Visibility.String(),
		OwnerName:  a.OwnerName,
		CreatedAt:  a.CreatedAt,
		FileURL:    a.FileURL,
	}
}

func toAssetResponses(assets []entity.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}
	return out
}

type UploadResponse struct {
	AssetResponse
}

func (UploadResponse) Message() string {
	return "Asset uploaded successfully"
}

func (UploadResponse) StatusCode() int {
	return http.StatusCreated
}

type PublicAssetsResponse []AssetResponse

func (PublicAssetsResponse) Message() string {
	return "Public assets fetched successfully"
}

type MyAssetsResponse []AssetResponse

func (MyAssetsResponse) Message() string {
	return "Your assets fetched successfully"
}

type DeleteResponse struct {
	ID string `json:"id"`
}

func (DeleteResponse) Message() string {
	return "Asset deleted successfully"
}
