package services

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
	"golang.org/x/sync/errgroup"
)

// ObjectPresigner is the part of s3.PresignClient used to sign gallery images.
type ObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// GalleryService swaps stored image references for short-lived S3 URLs.
// With no bucket configured it returns projects unchanged.
type GalleryService struct {
	presigner ObjectPresigner
	bucket    string
	prefix    string
	ttl       time.Duration
}

func NewGalleryService(client *s3.Client, bucket, prefix string, ttl time.Duration) GalleryService {
	var presigner ObjectPresigner
	if client != nil {
		presigner = s3.NewPresignClient(client)
	}
	return newGalleryService(presigner, bucket, prefix, ttl)
}

func newGalleryService(presigner ObjectPresigner, bucket, prefix string, ttl time.Duration) GalleryService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return GalleryService{presigner: presigner, bucket: bucket, prefix: strings.Trim(prefix, "/"), ttl: ttl}
}

func (g GalleryService) Enabled() bool {
	return g.presigner != nil && g.bucket != ""
}

// objectKey maps "midia/img/fachada/fachada-1.webp" in folder "fachada" to
// "<prefix>/fachada/fachada-1.webp".
func (g GalleryService) objectKey(folder, ref string) string {
	return path.Join(g.prefix, folder, path.Base(ref))
}

// Sign returns a copy of project whose cover and gallery images are presigned URLs.
func (g GalleryService) Sign(ctx context.Context, project models.Project) (models.Project, error) {
	project = project.Clone()
	if !g.Enabled() {
		return project, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		u, err := g.presign(egCtx, project.GalleryFolder, project.ImageURL)
		if err != nil {
			return err
		}
		project.ImageURL = u
		return nil
	})
	for i, ref := range project.GalleryImages {
		eg.Go(func() error {
			u, err := g.presign(egCtx, project.GalleryFolder, ref)
			if err != nil {
				return err
			}
			project.GalleryImages[i] = u
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return models.Project{}, errs.NewStorageError("sign gallery images", err)
	}
	return project, nil
}

// SignAll signs each project in turn, keeping order.
func (g GalleryService) SignAll(ctx context.Context, projects []models.Project) ([]models.Project, error) {
	if !g.Enabled() {
		return projects, nil
	}
	signed := make([]models.Project, len(projects))
	for i, p := range projects {
		s, err := g.Sign(ctx, p)
		if err != nil {
			return nil, err
		}
		signed[i] = s
	}
	return signed, nil
}

func (g GalleryService) presign(ctx context.Context, folder, ref string) (string, error) {
	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(g.objectKey(folder, ref)),
	}, s3.WithPresignExpires(g.ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
