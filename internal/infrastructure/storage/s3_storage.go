// Package storage implementa el almacenamiento de objetos para fotos sobre
// cualquier backend S3-compatible (AWS S3, MinIO, Supabase Storage).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/pkg/config"
	"github.com/passoapasso/cantina-api/pkg/logger"
)

var _ appledger.PhotoStorage = (*S3PhotoStorage)(nil)

// S3PhotoStorage guarda las fotos de productos y mantimentos en un bucket
// S3-compatible y devuelve URLs públicas path-style.
type S3PhotoStorage struct {
	client   *s3.Client
	endpoint string
	bucket   string
	log      *logger.Logger
}

// NewS3PhotoStorage construye el cliente S3 con credenciales estáticas y
// endpoint propio (MinIO, Supabase).
func NewS3PhotoStorage(cfg config.StorageConfig, log *logger.Logger) (*S3PhotoStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket requerido")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage: credenciales requeridas")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:9000"
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &S3PhotoStorage{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		bucket:   cfg.Bucket,
		log:      log,
	}, nil
}

// Upload sube la foto bajo prefix (produto-fotos, mantimento-fotos) con un
// nombre único y devuelve la URL pública del objeto.
func (s *S3PhotoStorage) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, uuid.NewString(), sanitizeFilename(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	s.log.Debug().Str("bucket", s.bucket).Str("key", key).Msg("foto subida")
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// Delete elimina el objeto a partir de su URL pública. URLs ajenas al bucket
// se ignoran sin error para no romper bajas de entidades con fotos antiguas.
func (s *S3PhotoStorage) Delete(ctx context.Context, url string) error {
	base := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	if !strings.HasPrefix(url, base) {
		s.log.Warn().Str("url", url).Msg("url de foto fuera del bucket, se ignora")
		return nil
	}
	key := strings.TrimPrefix(url, base)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	if name == "" {
		name = "foto"
	}
	return name
}
