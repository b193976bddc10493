package s3gw

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
)

// newTestGateway spins up an in-process fake S3 server (gofakes3, contributed
// to this pack by gostratum-storagex's go.mod) and returns a Gateway pointed
// at it, the same way integration-style gateway tests are written against a
// real endpoint elsewhere in the pack.
func newTestGateway(t *testing.T, bucket string) *Gateway {
	t.Helper()

	backend := s3mem.New()
	faker := gofakes3.New(backend)
	srv := httptest.NewServer(faker.Server())
	t.Cleanup(srv.Close)

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("KEY", "SECRET", "")),
	)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})

	_, err = client.CreateBucket(context.Background(), &s3.CreateBucketInput{Bucket: aws.String(bucket)})
	require.NoError(t, err)

	return New(client, bucket)
}

func TestListDirectoryNavigation(t *testing.T) {
	// Scenario 3 from spec.md §8: listing ["a/", "a/b.txt", "c.txt"] at prefix "".
	gw := newTestGateway(t, "nav")
	ctx := context.Background()

	require.NoError(t, gw.Put(ctx, "a/b.txt", bytes.NewReader([]byte("hi")), 2, nil))
	require.NoError(t, gw.Put(ctx, "c.txt", bytes.NewReader([]byte("hello")), 5, nil))

	entries, err := gw.List(ctx, "")
	require.NoError(t, err)

	var names []string
	kinds := map[string]model.EntryKind{}
	for _, e := range entries {
		names = append(names, e.Name)
		kinds[e.Name] = e.Kind
	}
	assert.ElementsMatch(t, []string{"a", "c.txt"}, names)
	assert.Equal(t, model.KindDirectory, kinds["a"])
	assert.Equal(t, model.KindFile, kinds["c.txt"])

	sub, err := gw.List(ctx, "a/")
	require.NoError(t, err)
	require.Len(t, sub, 1)
	assert.Equal(t, "b.txt", sub[0].Name)
	assert.Equal(t, model.KindFile, sub[0].Kind)
}

func TestPutGetRangeRoundTrip(t *testing.T) {
	gw := newTestGateway(t, "data")
	ctx := context.Background()

	content := []byte("0123456789")
	require.NoError(t, gw.Put(ctx, "file.bin", bytes.NewReader(content), int64(len(content)), nil))

	got, err := gw.GetRange(ctx, "file.bin", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("2345"), got)
}

func TestHeadNotFound(t *testing.T) {
	gw := newTestGateway(t, "empty")
	_, err := gw.Head(context.Background(), "missing.txt")
	require.Error(t, err)
}

func TestMkdirThenListShowsNoMarkerObject(t *testing.T) {
	gw := newTestGateway(t, "dirs")
	ctx := context.Background()

	require.NoError(t, gw.Mkdir(ctx, "logs/"))
	entries, err := gw.List(ctx, "")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "logs", entries[0].Name)
	assert.Equal(t, model.KindDirectory, entries[0].Kind)
}

func TestDeletePrefixRemovesAllContainedKeys(t *testing.T) {
	gw := newTestGateway(t, "tree")
	ctx := context.Background()

	require.NoError(t, gw.Put(ctx, "logs/2024/a.txt", bytes.NewReader([]byte("a")), 1, nil))
	require.NoError(t, gw.Put(ctx, "logs/2024/b.txt", bytes.NewReader([]byte("b")), 1, nil))

	require.NoError(t, gw.Delete(ctx, "logs/2024/"))

	entries, err := gw.List(ctx, "logs/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenamePrefixMovesAllContainedKeys(t *testing.T) {
	// Scenario 6 from spec.md §8.
	gw := newTestGateway(t, "rename")
	ctx := context.Background()

	require.NoError(t, gw.Put(ctx, "logs/2024/a.txt", bytes.NewReader([]byte("a")), 1, nil))
	require.NoError(t, gw.Put(ctx, "logs/2024/b.txt", bytes.NewReader([]byte("b")), 1, nil))

	require.NoError(t, gw.Rename(ctx, "logs/2024/", "logs/archive-2024/"))

	oldEntries, err := gw.List(ctx, "logs/2024/")
	require.NoError(t, err)
	assert.Empty(t, oldEntries)

	newEntries, err := gw.List(ctx, "logs/archive-2024/")
	require.NoError(t, err)
	assert.Len(t, newEntries, 2)
}

func TestDownloadRoundTrip(t *testing.T) {
	gw := newTestGateway(t, "down")
	ctx := context.Background()

	content := bytes.Repeat([]byte("x"), 1024)
	require.NoError(t, gw.Put(ctx, "f.bin", bytes.NewReader(content), int64(len(content)), nil))

	buf := make([]byte, len(content))
	w := &sliceWriterAt{buf: buf}
	require.NoError(t, gw.Download(ctx, "f.bin", w, int64(len(content)), nil))
	assert.Equal(t, content, buf)
}

type sliceWriterAt struct{ buf []byte }

func (s *sliceWriterAt) WriteAt(p []byte, off int64) (int, error) {
	n := copy(s.buf[off:], p)
	return n, nil
}
