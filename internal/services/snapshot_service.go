package services

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mholt/archives"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"scene-service/internal/metrics"
	"scene-service/internal/models"
	"scene-service/internal/storage"
)

const (
	snapshotPrefix = "snapshots/"
	snapshotSuffix = ".json.gz"
)

// SnapshotService archives the scene into object storage.
type SnapshotService struct {
	shapes *ShapeService
	store  storage.ObjectStore
	now    func() time.Time
}

func NewSnapshotService(shapes *ShapeService, store storage.ObjectStore) *SnapshotService {
	return &SnapshotService{shapes: shapes, store: store, now: utcNow}
}

func snapshotKey(id string) string {
	return snapshotPrefix + id + snapshotSuffix
}

// CreateSnapshot writes the current scene as a gzip compressed JSON document.
func (s *SnapshotService) CreateSnapshot(ctx context.Context) (info *models.SnapshotInfo, err error) {
	defer func() { metrics.RecordSnapshot(err) }()

	shapes, err := s.shapes.ListShapes(ctx)
	if err != nil {
		return nil, err
	}
	snap := models.SceneSnapshot{
		ID:      uuid.NewString(),
		TakenAt: s.now(),
		Count:   len(shapes),
		Objects: shapes,
	}

	var buf bytes.Buffer
	if err := encodeSnapshot(&buf, &snap); err != nil {
		return nil, err
	}
	size := int64(buf.Len())
	key := snapshotKey(snap.ID)
	if err := s.store.PutObject(ctx, key, &buf, size, "application/gzip"); err != nil {
		return nil, err
	}
	metrics.RecordSnapshotBytes("upload", size)

	return &models.SnapshotInfo{
		ID:      snap.ID,
		Key:     key,
		Size:    size,
		Count:   snap.Count,
		TakenAt: snap.TakenAt,
	}, nil
}

// ListSnapshots returns stored snapshots, newest first.
func (s *SnapshotService) ListSnapshots(ctx context.Context) ([]models.SnapshotListing, error) {
	objects, err := s.store.ListObjects(ctx, snapshotPrefix)
	if err != nil {
		return nil, err
	}
	infos := make([]models.SnapshotListing, 0, len(objects))
	for _, obj := range objects {
		name := path.Base(obj.Key)
		if !strings.HasSuffix(name, snapshotSuffix) {
			continue
		}
		infos = append(infos, models.SnapshotListing{
			ID:      strings.TrimSuffix(name, snapshotSuffix),
			Key:     obj.Key,
			Size:    obj.Size,
			TakenAt: obj.LastModified.UTC(),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].TakenAt.After(infos[j].TakenAt)
	})
	return infos, nil
}

// GetSnapshot downloads and decodes one snapshot.
func (s *SnapshotService) GetSnapshot(ctx context.Context, id string) (*models.SceneSnapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &NotFoundError{Kind: "Snapshot", ID: id}
	}
	rc, err := s.store.GetObject(ctx, snapshotKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, &NotFoundError{Kind: "Snapshot", ID: id}
		}
		return nil, err
	}
	body := newCountingReadCloser(rc)
	defer func() {
		if err := body.Close(); err != nil {
			log.Debug().Err(err).Str("snapshot_id", id).Msg("closing snapshot body")
		}
		metrics.RecordSnapshotBytes("download", body.Bytes())
	}()
	return decodeSnapshot(body)
}

func encodeSnapshot(w io.Writer, snap *models.SceneSnapshot) error {
	zw, err := archives.Gz{}.OpenWriter(w)
	if err != nil {
		return errors.Wrap(err, "open gzip writer")
	}
	if err := json.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(zw.Close(), "flush gzip writer")
}

func decodeSnapshot(r io.Reader) (*models.SceneSnapshot, error) {
	zr, err := archives.Gz{}.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open gzip reader")
	}
	defer zr.Close()

	var snap models.SceneSnapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	return &snap, nil
}
