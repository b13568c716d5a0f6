package services

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-service/internal/models"
	"scene-service/internal/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	shapes := newShapeService(t)
	store := testutil.NewMemoryStore()
	svc := NewSnapshotService(shapes, store)

	for _, kind := range []string{"cube", "torus"} {
		_, err := shapes.CreateShape(ctx, models.ShapeCreate{ShapeType: kind, Position: &models.Vec3{X: 1}})
		require.NoError(t, err)
	}

	info, err := svc.CreateSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Count)
	assert.Equal(t, "snapshots/"+info.ID+".json.gz", info.Key)
	assert.Positive(t, info.Size)

	// stored bytes are gzip
	raw := store.Raw(info.Key)
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	snap, err := svc.GetSnapshot(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, snap.ID)
	require.Len(t, snap.Objects, 2)
	kinds := []string{snap.Objects[0].ShapeType, snap.Objects[1].ShapeType}
	assert.ElementsMatch(t, []string{"cube", "torus"}, kinds)
	assert.Equal(t, "#00ffff", snap.Objects[0].Material["color"])
}

func TestListSnapshots_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewSnapshotService(newShapeService(t), testutil.NewMemoryStore())

	first, err := svc.CreateSnapshot(ctx)
	require.NoError(t, err)
	second, err := svc.CreateSnapshot(ctx)
	require.NoError(t, err)

	list, err := svc.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestGetSnapshot_NotFound(t *testing.T) {
	svc := NewSnapshotService(newShapeService(t), testutil.NewMemoryStore())
	var nf *NotFoundError

	_, err := svc.GetSnapshot(context.Background(), uuid.NewString())
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Snapshot not found", nf.Error())

	_, err = svc.GetSnapshot(context.Background(), "../etc/passwd")
	assert.True(t, errors.As(err, &nf))
}

type failingCloseStore struct {
	*testutil.MemoryStore
}

type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error { return errors.New("connection reset") }

func (s failingCloseStore) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.MemoryStore.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	return failingCloser{Reader: rc}, nil
}

func TestGetSnapshot_LogsCloseError(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	ctx := context.Background()
	svc := NewSnapshotService(newShapeService(t), failingCloseStore{testutil.NewMemoryStore()})
	info, err := svc.CreateSnapshot(ctx)
	require.NoError(t, err)

	snap, err := svc.GetSnapshot(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, snap.ID)
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestCreateSnapshot_EmptySceneReportsZeroCount(t *testing.T) {
	svc := NewSnapshotService(newShapeService(t), testutil.NewMemoryStore())

	info, err := svc.CreateSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, info.Count)

	raw, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"count":0`)
}
