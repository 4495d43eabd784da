package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"connected/internal/common"
)

// MediaStorage stores post media in GridFS, addressed by the object key the
// upload generates. It implements common.MediaStore.
type MediaStorage struct {
	gridFS *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

// Upload validates the content type, derives the object key, and writes the
// content under that key. Only image/video uploads are accepted; anything
// else fails with common.ErrUnsupportedMedia before any bytes are stored.
func (ms *MediaStorage) Upload(ctx context.Context, authorID, mimeType string, content io.Reader) (string, error) {
	fileType, err := common.DetectFileType(mimeType)
	if err != nil {
		return "", err
	}

	key := common.MediaKey(authorID, mimeType, time.Now())

	metadata := bson.M{
		"file_type":   fileType.String(), // "image" or "video"
		"mime_type":   mimeType,
		"uploaded_by": authorID,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(key, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, content); err != nil {
		return "", fmt.Errorf("file copy failed: %w", err)
	}

	return key, nil
}

// Delete removes the object stored under key. A key that is no longer present
// reports common.ErrNotFound.
func (ms *MediaStorage) Delete(ctx context.Context, key string) error {
	cursor, err := ms.gridFS.Find(bson.M{"filename": key})
	if err != nil {
		return fmt.Errorf("media lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	var file struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("media lookup failed: %w", err)
		}
		return fmt.Errorf("media %q: %w", key, common.ErrNotFound)
	}
	if err := cursor.Decode(&file); err != nil {
		return fmt.Errorf("media lookup failed: %w", err)
	}

	if err := ms.gridFS.Delete(file.ID); err != nil {
		if err == gridfs.ErrFileNotFound || err == mongo.ErrNoDocuments {
			return fmt.Errorf("media %q: %w", key, common.ErrNotFound)
		}
		return fmt.Errorf("media delete failed: %w", err)
	}
	return nil
}
