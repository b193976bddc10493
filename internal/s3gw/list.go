package s3gw

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eddi888/s3c/internal/model"
)

// delimiter is the S3 "directory" separator, fixed by spec.md §4.3.
const delimiter = "/"

// List returns the entries directly under prefix: CommonPrefixes become
// Directory entries (named by their last path segment) and Contents become
// File entries, paginated server-side and concatenated here. A Content key
// equal to prefix itself (the zero-byte "directory marker" object mkdir
// creates) is omitted, per spec.md §4.3.
func (g *Gateway) List(ctx context.Context, prefix string) ([]model.Entry, error) {
	var entries []model.Entry

	paginator := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(g.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String(delimiter),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, normalize(err, "list "+prefix)
		}

		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), delimiter)
			if name == "" {
				continue
			}
			entries = append(entries, model.Entry{Name: name, Kind: model.KindDirectory, Size: -1})
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == prefix {
				continue
			}
			name := strings.TrimPrefix(key, prefix)
			if name == "" || strings.Contains(name, delimiter) {
				continue
			}
			e := model.Entry{Name: name, Kind: model.KindFile, Size: aws.ToInt64(obj.Size)}
			if obj.LastModified != nil {
				e.MTime, e.HasMTime = *obj.LastModified, true
			}
			entries = append(entries, e)
		}
	}

	return entries, nil
}

// ObjectInfo is the result of Head.
type ObjectInfo struct {
	Size    int64
	MTime   time.Time
	ETag    string
	Present bool
}

// Head returns size/mtime/etag for key.
func (g *Gateway) Head(ctx context.Context, key string) (ObjectInfo, error) {
	out, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return ObjectInfo{}, normalize(err, "head "+key)
	}

	info := ObjectInfo{Size: aws.ToInt64(out.ContentLength), ETag: aws.ToString(out.ETag), Present: true}
	if out.LastModified != nil {
		info.MTime = *out.LastModified
	}
	return info, nil
}
