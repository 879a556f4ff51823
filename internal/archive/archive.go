package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	conf "github.com/trunov/rawhub/internal/config"
)

var ErrQueueFull = errors.New("archive queue is full")

// Storage keeps a best-effort copy of every produced image in an
// S3-compatible bucket. Failures are logged, never propagated: the
// client-facing upload is the source of truth, the archive is not.
type Storage struct {
	Bucket    string
	KeyPrefix string

	Workers        int
	QueueSize      int
	MaxRetries     int
	RetryBaseDelay time.Duration

	queue  chan request
	wg     sync.WaitGroup
	putter objectPutter
}

type request struct {
	ctx         context.Context
	key         string
	contentType string
	payload     []byte
}

type objectPutter interface {
	Put(ctx context.Context, bucket, key, contentType string, payload []byte) error
}

type s3Putter struct {
	uploader *manager.Uploader
}

func (p *s3Putter) Put(ctx context.Context, bucket, key, contentType string, payload []byte) error {
	_, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	return err
}

func NewStorage(cfg *conf.ArchiveConfig) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretKey, "",
		)),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
	})

	s := &Storage{
		Bucket:         cfg.BucketName,
		KeyPrefix:      cfg.KeyPrefix,
		Workers:        4,
		QueueSize:      256,
		MaxRetries:     3,
		RetryBaseDelay: 300 * time.Millisecond,
		putter:         &s3Putter{uploader: manager.NewUploader(client)},
	}
	s.run()

	log.Info().Str("bucket", s.Bucket).Msg("archive client + worker pool initialized")

	return s, nil
}

func newWithPutter(p objectPutter, workers, queueSize, maxRetries int) *Storage {
	s := &Storage{
		Workers:        workers,
		QueueSize:      queueSize,
		MaxRetries:     maxRetries,
		RetryBaseDelay: time.Millisecond,
		putter:         p,
	}
	s.run()
	return s
}

func (s *Storage) run() {
	s.queue = make(chan request, s.QueueSize)
	for i := 0; i < s.Workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

// Close waits for all queued archive tasks to be processed.
func (s *Storage) Close() {
	close(s.queue)
	s.wg.Wait()
}

// Enqueue tries to put an archive task on the queue without blocking.
// If the queue is full, it returns ErrQueueFull immediately.
func (s *Storage) Enqueue(ctx context.Context, key, contentType string, payload []byte) error {
	req := request{ctx: ctx, key: s.KeyPrefix + key, contentType: contentType, payload: payload}
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (s *Storage) worker() {
	defer s.wg.Done()
	for req := range s.queue {
		attempt := 0

		for {
			attempt++
			err := s.putter.Put(req.ctx, s.Bucket, req.key, req.contentType, req.payload)
			if err == nil {
				log.Debug().Str("key", req.key).Msg("archived converted image")
				break
			}

			if attempt > s.MaxRetries {
				log.Warn().Err(err).Str("key", req.key).Int("attempts", attempt).Msg("giving up on archive task")
				break
			}

			backoff := s.backoffDelay(attempt)
			timer := time.NewTimer(backoff)
			select {
			case <-timer.C:
			case <-req.ctx.Done():
				timer.Stop()
			}
			if req.ctx != nil && req.ctx.Err() != nil {
				break
			}
		}
	}
}

func (s *Storage) backoffDelay(attempt int) time.Duration {
	delay := s.RetryBaseDelay << (attempt - 1)
	jitter := time.Duration(int64(delay) / 10)
	return delay - (jitter / 2) + time.Duration(int64(jitter)*time.Now().UnixNano()%2)
}
