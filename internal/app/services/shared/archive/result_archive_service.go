package archive

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/models"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	resultArchiveInstance contracts.ResultArchive
	onceResultArchive     sync.Once
)

type resultArchiveService struct {
	client     *minio.Client
	bucketName string
	Log        *zap.Logger
}

func NewResultArchiveService(client *minio.Client, bucketName string, logger *zap.Logger) contracts.ResultArchive {
	onceResultArchive.Do(func() {
		instance := &resultArchiveService{
			client:     client,
			bucketName: bucketName,
			Log:        logger,
		}
		resultArchiveInstance = instance
	})
	return resultArchiveInstance
}

func (s *resultArchiveService) StoreResult(ctx context.Context, result *models.ResultSet) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf(constvars.ArchiveObjectNameFmt, result.SessionID)
	reader := bytes.NewReader(payload)

	_, err = s.client.PutObject(ctx, s.bucketName, objectName, reader, int64(len(payload)), minio.PutObjectOptions{
		ContentType: constvars.ArchiveObjectContentTyp,
	})
	if err != nil {
		s.Log.Error("resultArchiveService.StoreResult error uploading object",
			zap.String(constvars.LoggingBucketKey, s.bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return exceptions.ErrArchivePut(err)
	}

	s.Log.Info("resultArchiveService.StoreResult archived result",
		zap.String(constvars.LoggingBucketKey, s.bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.String(constvars.LoggingSessionIDKey, result.SessionID),
	)
	return nil
}
