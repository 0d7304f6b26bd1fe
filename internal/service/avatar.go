package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nutriplan/backend/config"
)

// allowedAvatarTypes maps accepted content types to file extensions.
var allowedAvatarTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// AvatarService stores profile pictures in S3 and returns their public URL.
type AvatarService struct {
	s3Config *config.S3Config
}

func NewAvatarService(s3Config *config.S3Config) *AvatarService {
	return &AvatarService{s3Config: s3Config}
}

// Upload stores an avatar under a per-user key and returns the public URL.
// Re-uploading overwrites the previous avatar.
func (s *AvatarService) Upload(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	ext, ok := allowedAvatarTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported avatar content type %q", contentType)
	}

	key := fmt.Sprintf("avatars/%s.%s", userID, ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}
