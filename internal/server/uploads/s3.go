package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/filex"
)

const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// S3Config holds the settings of an S3-compatible backend (AWS or MinIO).
type S3Config struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
	// Prefix is prepended to object keys, e.g. "covers/".
	Prefix string
}

// S3Store puts uploads into a bucket and serves them through presigned GET URLs.
type S3Store struct {
	cfg     S3Config
	namer   *Namer
	client  *s3.Client
	presign *s3.PresignClient
}

func NewS3Store(ctx context.Context, cfg S3Config, namer *Namer) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.User,
			cfg.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{cfg: cfg, namer: namer, client: client, presign: newS3PresignClient(client)}, nil
}

func (s *S3Store) key(name string) string {
	return s.cfg.Prefix + name
}

func (s *S3Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := s.namer.Next(originalName)

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(name)),
		Body:   r,
	}
	if ct := mime.TypeByExtension(Ext(name)); ct != "" {
		in.ContentType = aws.String(ct)
	}

	if _, err := putObject(s.client, ctx, in); err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}
	return name, nil
}

func (s *S3Store) Locate(ctx context.Context, name string) (Location, error) {
	if _, err := filex.SafeJoin("", name); err != nil {
		return Location{}, common.ErrorNotFound
	}

	bucket := s.cfg.Bucket
	key := s.key(name)

	if _, err := headObject(s.client, ctx, &s3.HeadObjectInput{Bucket: &bucket, Key: &key}); err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return Location{}, common.ErrorNotFound
		}
		return Location{}, fmt.Errorf("s3 head: %w", err)
	}

	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return Location{}, fmt.Errorf("s3 presign: %w", err)
	}

	return Location{URL: req.URL}, nil
}
