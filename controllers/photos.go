package controllers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
)

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	previewSize       = 300
)

var (
	s3Once   sync.Once
	s3Client *minio.Client
	s3Err    error
)

func s3() (*minio.Client, error) {
	s3Once.Do(func() {
		endpoint := os.Getenv("S3_ENDPOINT")
		if endpoint == "" {
			s3Err = fmt.Errorf("S3_ENDPOINT not configured")
			return
		}
		s3Client, s3Err = minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
			Secure: true,
		})
	})
	return s3Client, s3Err
}

// SaveProductPhotoToS3 uploads a product photo and a 300px preview
// thumbnail to S3-compatible storage, re-encoding large images at width
// 800. Returns the public URLs of both objects.
func SaveProductPhotoToS3(file *multipart.FileHeader, productName string) (string, string, error) {
	if file.Size > maxFileSize {
		return "", "", fmt.Errorf("file size exceeds the 5MB limit")
	}

	client, err := s3()
	if err != nil {
		return "", "", err
	}
	bucket := os.Getenv("S3_BUCKET")
	cdnDomain := os.Getenv("S3_CDN_DOMAIN")
	if bucket == "" {
		return "", "", fmt.Errorf("S3_BUCKET not configured")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", "", fmt.Errorf("unsupported file format: %s", contentType)
	}

	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(productName)), " ", "-")
	baseName := fmt.Sprintf("products/%s_%d", slug, time.Now().Unix())
	mainFilename := fmt.Sprintf("%s%s", baseName, fileExt)
	previewFilename := fmt.Sprintf("%s_preview%s", baseName, fileExt)

	srcFile, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer srcFile.Close()

	originalData, err := io.ReadAll(srcFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read image data: %v", err)
	}

	var img image.Image
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(originalData))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(originalData))
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %v", err)
	}

	var bufMain bytes.Buffer
	if file.Size >= compressThreshold {
		resizedMain := resize.Resize(800, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&bufMain, resizedMain, &jpeg.Options{Quality: 80}); err != nil {
			return "", "", fmt.Errorf("failed to encode resized image: %v", err)
		}
	} else {
		bufMain.Write(originalData)
	}

	_, err = client.PutObject(context.Background(), bucket, mainFilename, &bufMain, int64(bufMain.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload main image to S3: %v", err)
	}

	previewImg := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	var bufPreview bytes.Buffer
	if err := jpeg.Encode(&bufPreview, previewImg, &jpeg.Options{Quality: 80}); err != nil {
		return "", "", fmt.Errorf("failed to encode preview image: %v", err)
	}

	_, err = client.PutObject(context.Background(), bucket, previewFilename, &bufPreview, int64(bufPreview.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload preview image to S3: %v", err)
	}

	host := cdnDomain
	if host == "" {
		host = os.Getenv("S3_ENDPOINT") + "/" + bucket
	}
	return fmt.Sprintf("https://%s/%s", host, mainFilename),
		fmt.Sprintf("https://%s/%s", host, previewFilename), nil
}
