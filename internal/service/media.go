package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/httpclient"
	"github.com/h2non/filetype"
)

// MediaService proxies logo uploads to the configured image host and
// returns the hosted URL to persist on the store.
type MediaService interface {
	UploadLogo(ctx context.Context, filename string, data []byte) (string, error)
}

type mediaService struct {
	ServiceParams
}

func NewMediaService(params ServiceParams) MediaService {
	return &mediaService{ServiceParams: params}
}

type uploadRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (s *mediaService) UploadLogo(ctx context.Context, filename string, data []byte) (string, error) {
	if s.Config.Media.UploadURL == "" {
		return "", ierr.NewError("media uploads not configured").
			WithHint("Logo uploads are not available").
			Mark(ierr.ErrSystem)
	}
	if len(data) == 0 {
		return "", ierr.NewError("empty upload").
			WithHint("Please provide an image file").
			Mark(ierr.ErrValidation)
	}
	if !filetype.IsImage(data) {
		return "", ierr.NewError("upload is not an image").
			WithHint("Logos must be image files").
			WithReportableDetails(map[string]any{
				"filename": filename,
			}).
			Mark(ierr.ErrValidation)
	}

	body, err := json.Marshal(uploadRequest{
		Filename: filename,
		Content:  base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to encode upload").
			Mark(ierr.ErrSystem)
	}

	resp, err := s.Client.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    s.Config.Media.UploadURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + s.Config.Media.APIKey,
		},
		Body: body,
	})
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Logo upload failed").
			Mark(ierr.ErrHTTPClient)
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(resp.Body, &uploaded); err != nil {
		return "", ierr.WithError(err).
			WithHint("Image host returned an unexpected response").
			Mark(ierr.ErrHTTPClient)
	}
	if uploaded.URL == "" {
		return "", ierr.NewError("image host returned no url").
			WithHint("Logo upload failed").
			Mark(ierr.ErrHTTPClient)
	}

	s.Logger.Infow("logo uploaded", "filename", filename)
	return uploaded.URL, nil
}
