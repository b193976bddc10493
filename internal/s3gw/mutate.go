package s3gw

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Delete removes key. If key ends with "/" it is treated as a "directory":
// every key sharing that prefix is deleted in batches of deleteBatchSize,
// per spec.md §4.3.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	if !strings.HasSuffix(key, delimiter) {
		_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(g.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return normalize(err, "delete "+key)
		}
		return nil
	}
	return g.deletePrefix(ctx, key)
}

func (g *Gateway) deletePrefix(ctx context.Context, prefix string) error {
	keys, err := g.listAllKeys(ctx, prefix)
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(keys))
		objs := make([]types.ObjectIdentifier, 0, end-start)
		for _, k := range keys[start:end] {
			objs = append(objs, types.ObjectIdentifier{Key: aws.String(k)})
		}
		_, err := g.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(g.bucket),
			Delete: &types.Delete{Objects: objs},
		})
		if err != nil {
			return normalize(err, "delete prefix "+prefix)
		}
	}
	return nil
}

// Mkdir puts a zero-byte object at prefix, which must end with "/", per
// spec.md §4.3.
func (g *Gateway) Mkdir(ctx context.Context, prefix string) error {
	if !strings.HasSuffix(prefix, delimiter) {
		prefix += delimiter
	}
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(prefix),
		Body:          strings.NewReader(""),
		ContentLength: aws.Int64(0),
	})
	if err != nil {
		return normalize(err, "mkdir "+prefix)
	}
	return nil
}

// Rename copies srcKey to dstKey (server-side) then deletes srcKey. For a
// "directory" (srcKey ending in "/"), every contained key is renamed in
// turn; on a mid-sequence failure the error names the first failing key and
// the keys already renamed remain renamed (partial state is preserved, per
// spec.md §4.7's Rename invariant).
func (g *Gateway) Rename(ctx context.Context, srcKey, dstKey string) error {
	if !strings.HasSuffix(srcKey, delimiter) {
		return g.renameOne(ctx, srcKey, dstKey)
	}

	keys, err := g.listAllKeys(ctx, srcKey)
	if err != nil {
		return err
	}
	for _, k := range keys {
		rel := strings.TrimPrefix(k, srcKey)
		if err := g.renameOne(ctx, k, dstKey+rel); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) renameOne(ctx context.Context, srcKey, dstKey string) error {
	_, err := g.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(g.bucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(g.bucket + "/" + srcKey),
	})
	if err != nil {
		return normalize(err, "rename "+srcKey)
	}
	_, err = g.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(g.bucket), Key: aws.String(srcKey)})
	if err != nil {
		return normalize(err, "delete source after rename "+srcKey)
	}
	return nil
}

// listAllKeys lists every Contents key under prefix (no delimiter), used by
// deletePrefix and Rename to enumerate a "directory"'s full contents.
func (g *Gateway) listAllKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(g.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, normalize(err, "list prefix "+prefix)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
