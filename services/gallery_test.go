package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	mu      sync.Mutex
	keys    []string
	expires time.Duration
	failOn  string
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, *in.Key)
	f.expires = opts.Expires
	if f.failOn != "" && strings.HasSuffix(*in.Key, f.failOn) {
		return nil, errors.New("access denied")
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://" + *in.Bucket + ".s3.amazonaws.com/" + *in.Key + "?X-Amz-Signature=abc",
		Method: http.MethodGet,
	}, nil
}

func TestGalleryService_DisabledReturnsCopy(t *testing.T) {
	g := NewGalleryService(nil, "", "", 0)
	assert.False(t, g.Enabled())

	p := models.SeedProjects()[0]
	signed, err := g.Sign(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, signed)

	signed.GalleryImages[0] = "x"
	assert.NotEqual(t, "x", p.GalleryImages[0])
}

func TestGalleryService_SignsCoverAndGallery(t *testing.T) {
	presigner := &fakePresigner{}
	g := newGalleryService(presigner, "jrm-midia", "/galeria/", 10*time.Minute)

	p := models.SeedProjects()[2]
	signed, err := g.Sign(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, "https://jrm-midia.s3.amazonaws.com/galeria/quadro-luz/luz-1.webp?X-Amz-Signature=abc", signed.ImageURL)
	assert.Equal(t, []string{
		"https://jrm-midia.s3.amazonaws.com/galeria/quadro-luz/luz-1.webp?X-Amz-Signature=abc",
		"https://jrm-midia.s3.amazonaws.com/galeria/quadro-luz/luz-2.webp?X-Amz-Signature=abc",
	}, []string(signed.GalleryImages))
	assert.Equal(t, 10*time.Minute, presigner.expires)
	assert.Len(t, presigner.keys, 3)
	assert.Equal(t, "midia/img/quadro-luz/luz-1.webp", p.ImageURL)
}

func TestGalleryService_SignAllKeepsOrder(t *testing.T) {
	g := newGalleryService(&fakePresigner{}, "b", "", 0)
	signed, err := g.SignAll(context.Background(), models.SeedProjects())
	require.NoError(t, err)
	require.Len(t, signed, 6)
	for i, p := range signed {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, strings.HasPrefix(p.ImageURL, "https://b.s3.amazonaws.com/"+p.GalleryFolder+"/"))
	}
}

func TestGalleryService_PresignFailure(t *testing.T) {
	g := newGalleryService(&fakePresigner{failOn: "obra-3.jpg"}, "b", "", 0)
	_, err := g.Sign(context.Background(), models.SeedProjects()[1])
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
