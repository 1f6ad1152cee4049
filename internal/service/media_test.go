package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Kal1-linux/CouponCo/internal/config"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/Kal1-linux/CouponCo/internal/httpclient"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/stretchr/testify/suite"
)

// stubHTTPClient records the last request and replays a canned response
type stubHTTPClient struct {
	lastRequest *httpclient.Request
	response    *httpclient.Response
	err         error
}

func (c *stubHTTPClient) Send(_ context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	c.lastRequest = req
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

type MediaServiceSuite struct {
	testutil.BaseServiceTestSuite
	client  *stubHTTPClient
	service MediaService
}

// pngBytes carries a PNG magic number so the upload passes image sniffing
func pngBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
}

func TestMediaService(t *testing.T) {
	suite.Run(t, new(MediaServiceSuite))
}

func (s *MediaServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.client = &stubHTTPClient{
		response: &httpclient.Response{
			StatusCode: 200,
			Body:       []byte(`{"url":"https://img.example.com/logo.png"}`),
		},
	}

	cfg := *s.GetConfig()
	cfg.Media = config.MediaConfig{
		UploadURL: "https://img.example.com/upload",
		APIKey:    "test-key",
	}

	s.service = NewMediaService(ServiceParams{
		Logger: s.GetLogger(),
		Config: &cfg,
		Client: s.client,
	})
}

func (s *MediaServiceSuite) TestUploadLogo() {
	url, err := s.service.UploadLogo(s.GetContext(), "logo.png", pngBytes())
	s.NoError(err)
	s.Equal("https://img.example.com/logo.png", url)

	s.Require().NotNil(s.client.lastRequest)
	s.Equal("https://img.example.com/upload", s.client.lastRequest.URL)
	s.Equal("Bearer test-key", s.client.lastRequest.Headers["Authorization"])

	var payload map[string]string
	s.NoError(json.Unmarshal(s.client.lastRequest.Body, &payload))
	s.Equal("logo.png", payload["filename"])
	s.NotEmpty(payload["content"])
}

func (s *MediaServiceSuite) TestUploadLogoEmptyFile() {
	_, err := s.service.UploadLogo(s.GetContext(), "logo.png", nil)
	s.True(ierr.IsValidation(err))
}

func (s *MediaServiceSuite) TestUploadLogoRejectsNonImage() {
	_, err := s.service.UploadLogo(s.GetContext(), "logo.txt", []byte("plain text"))
	s.True(ierr.IsValidation(err))
	// Never forwarded upstream
	s.Nil(s.client.lastRequest)
}

func (s *MediaServiceSuite) TestUploadLogoUpstreamFailure() {
	s.client.err = httpclient.NewError(502, []byte("bad gateway"))

	_, err := s.service.UploadLogo(s.GetContext(), "logo.png", pngBytes())
	s.True(ierr.IsHTTPClient(err))
}

func (s *MediaServiceSuite) TestUploadLogoNotConfigured() {
	svc := NewMediaService(ServiceParams{
		Logger: s.GetLogger(),
		Config: s.GetConfig(),
		Client: s.client,
	})

	_, err := svc.UploadLogo(s.GetContext(), "logo.png", pngBytes())
	s.True(ierr.IsSystem(err))
}

func (s *MediaServiceSuite) TestUploadLogoBadUpstreamBody() {
	s.client.response = &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"unexpected":"shape"}`),
	}

	_, err := s.service.UploadLogo(s.GetContext(), "logo.png", pngBytes())
	s.True(ierr.IsHTTPClient(err))
}
