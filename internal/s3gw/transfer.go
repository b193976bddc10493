package s3gw

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetRange fetches length bytes of key starting at offset, the primitive the
// Preview Engine chunks around.
func (g *Gateway) GetRange(ctx context.Context, key string, offset, length int64) ([]byte, error) {
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", offset, offset+length-1)),
	})
	if err != nil {
		return nil, normalize(err, "get "+key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, normalize(err, "read "+key)
	}
	return data, nil
}

// ProgressFunc receives a running byte count as Put streams its body.
type ProgressFunc func(transferred int64)

// progressReader wraps an io.Reader, invoking cb after every Read.
type progressReader struct {
	io.Reader
	cb   ProgressFunc
	read int64
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.Reader.Read(buf)
	if n > 0 {
		p.read += int64(n)
		if p.cb != nil {
			p.cb(p.read)
		}
	}
	return n, err
}

// Put uploads stream to key, using multipart once totalBytes exceeds
// multipartThreshold, per spec.md §4.3. progress is invoked with the running
// byte count (the Transfer Manager is responsible for coalescing this into
// at most 20 UI updates/second).
func (g *Gateway) Put(ctx context.Context, key string, stream io.Reader, totalBytes int64, progress ProgressFunc) error {
	body := io.Reader(stream)
	if progress != nil {
		body = &progressReader{Reader: stream, cb: progress}
	}

	if totalBytes <= multipartThreshold {
		_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(g.bucket),
			Key:           aws.String(key),
			Body:          body,
			ContentLength: aws.Int64(totalBytes),
		})
		if err != nil {
			return normalize(err, "put "+key)
		}
		return nil
	}

	_, err := g.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return normalize(err, "multipart put "+key)
	}
	return nil
}

// Download streams key into w, reporting progress the same way Put does. Used
// by the Transfer Manager for the download direction; uses the manager's
// Downloader above multipartThreshold to parallelize ranged GETs.
func (g *Gateway) Download(ctx context.Context, key string, w io.WriterAt, totalBytes int64, progress ProgressFunc) error {
	cb := progress
	var transferred int64
	wrapped := countingWriterAt{WriterAt: w, onWrite: func(n int64) {
		if cb == nil {
			return
		}
		transferred += n
		cb(transferred)
	}}

	if totalBytes <= multipartThreshold {
		out, err := g.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(g.bucket), Key: aws.String(key)})
		if err != nil {
			return normalize(err, "get "+key)
		}
		defer out.Body.Close()
		_, err = io.Copy(&writerAtSeqAdapter{wrapped, 0}, out.Body)
		if err != nil {
			return normalize(err, "read "+key)
		}
		return nil
	}

	_, err := g.downloader.Download(ctx, wrapped, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return normalize(err, "multipart get "+key)
	}
	return nil
}

type countingWriterAt struct {
	io.WriterAt
	onWrite func(n int64)
}

func (c countingWriterAt) WriteAt(p []byte, off int64) (int, error) {
	n, err := c.WriterAt.WriteAt(p, off)
	if n > 0 && c.onWrite != nil {
		c.onWrite(int64(n))
	}
	return n, err
}

// writerAtSeqAdapter turns a WriterAt into a sequential io.Writer for the
// single-part download path, which reads the body as a plain stream.
type writerAtSeqAdapter struct {
	w   io.WriterAt
	off int64
}

func (a *writerAtSeqAdapter) Write(p []byte) (int, error) {
	n, err := a.w.WriteAt(p, a.off)
	a.off += int64(n)
	return n, err
}
