package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var (
	s3Session *session.Session
	uploader  *s3manager.Uploader
	useS3     bool
	exportDir string
)

// InitStorage initializes either S3 or local storage for booking export
// archives based on configuration
func InitStorage() error {
	// Try to initialize S3
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		// AWS credentials are configured, use S3
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(
				awsAccessKey,
				awsSecretKey,
				"",
			),
		})
		if err != nil {
			return fmt.Errorf("failed to create AWS session: %v", err)
		}

		s3Session = sess
		uploader = s3manager.NewUploader(sess)
		useS3 = true

		fmt.Println("AWS S3 export storage initialized")
		return nil
	}

	// Fallback to local storage
	useS3 = false
	exportDir = os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %v", err)
	}

	fmt.Println("AWS S3 not configured. Archiving exports to local disk")
	return nil
}

// SaveExport archives a generated booking export (CSV) and returns its
// location. Archiving is best-effort alongside the direct download.
func SaveExport(name string, data []byte) (string, error) {
	fileName := fmt.Sprintf("%s-%d.csv", name, time.Now().UnixNano())

	if useS3 {
		return saveExportToS3(fileName, data)
	}
	return saveExportLocally(fileName, data)
}

func saveExportToS3(fileName string, data []byte) (string, error) {
	bucketName := os.Getenv("AWS_S3_BUCKET")
	if bucketName == "" {
		return "", fmt.Errorf("S3 bucket name not configured")
	}

	key := "exports/" + fileName
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to S3: %v", err)
	}

	awsRegion := os.Getenv("AWS_REGION")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, awsRegion, key), nil
}

func saveExportLocally(fileName string, data []byte) (string, error) {
	if exportDir == "" {
		return "", fmt.Errorf("export storage not initialized")
	}
	path := filepath.Join(exportDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save export: %v", err)
	}
	return path, nil
}

// IsUsingS3 returns true if S3 storage is being used
func IsUsingS3() bool {
	return useS3
}
