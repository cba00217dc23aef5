package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"weddingsite/internal/imageproc"
	"weddingsite/internal/models"
	"weddingsite/internal/repository"
	"weddingsite/internal/storage"
)

// positionPrefix matches the "NNN_" order prefix of gallery file names.
var positionPrefix = regexp.MustCompile(`^\d+_`)

type GalleryListing struct {
	Main    *models.GalleryItem  `json:"main"`
	Gallery []models.GalleryItem `json:"gallery"`
}

type PurgeResult struct {
	Removed int   `json:"removed"`
	Bytes   int64 `json:"bytes"`
}

type GalleryOptions struct {
	MaxUploadSize   int64
	MaxWidthMain    int
	MaxWidthGallery int
}

type GalleryService interface {
	ListPublic(ctx context.Context) (*GalleryListing, error)
	ListAdmin(ctx context.Context) ([]models.GalleryItem, error)
	Upload(ctx context.Context, itemType string, file io.Reader) (*models.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, sourceID, targetID int64) ([]models.GalleryItem, error)
	Purge(ctx context.Context, olderThan time.Duration) (*PurgeResult, error)
}

type galleryService struct {
	repo      repository.GalleryRepository
	storage   storage.Storage
	processor *imageproc.Processor
	opts      GalleryOptions
	log       *zap.Logger
	now       func() time.Time

	// mu serializes uploads and reorders so order_index and file names stay in step.
	mu sync.Mutex
}

func NewGalleryService(repo repository.GalleryRepository, store storage.Storage, processor *imageproc.Processor, opts GalleryOptions, log *zap.Logger) GalleryService {
	return &galleryService{
		repo:      repo,
		storage:   store,
		processor: processor,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

func (s *galleryService) ListPublic(ctx context.Context) (*GalleryListing, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	listing := &GalleryListing{Gallery: []models.GalleryItem{}}
	for i := range items {
		item := s.withURL(items[i])
		if item.Type == models.GalleryTypeMain {
			listing.Main = &item
			continue
		}
		listing.Gallery = append(listing.Gallery, item)
	}

	return listing, nil
}

func (s *galleryService) ListAdmin(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i] = s.withURL(items[i])
	}

	return items, nil
}

func (s *galleryService) withURL(item models.GalleryItem) models.GalleryItem {
	item.URL = s.storage.URL(item.Filename)
	return item
}

func (s *galleryService) Upload(ctx context.Context, itemType string, file io.Reader) (*models.GalleryItem, error) {
	var maxWidth int
	switch itemType {
	case models.GalleryTypeMain:
		maxWidth = s.opts.MaxWidthMain
	case models.GalleryTypeGallery:
		maxWidth = s.opts.MaxWidthGallery
	default:
		return nil, fmt.Errorf("%w: type must be main or gallery", ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.opts.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.opts.MaxUploadSize {
		return nil, fmt.Errorf("%w: limit is %s", ErrFileTooLarge, humanize.IBytes(uint64(s.opts.MaxUploadSize)))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	result, err := s.processor.Process(data, maxWidth)
	if err != nil {
		if errors.Is(err, imageproc.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: only JPEG, PNG, GIF and WebP are accepted", ErrUnsupportedMedia)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := &models.GalleryItem{Type: itemType}
	suffix := xid.New().String()

	if itemType == models.GalleryTypeGallery {
		maxOrder, err := s.repo.MaxGalleryOrder(ctx)
		if err != nil {
			return nil, err
		}
		item.OrderIndex = maxOrder + 1
		item.Filename = storage.DatedKey(s.now(), positionName(item.OrderIndex, suffix, imageproc.OutputExt))
	} else {
		item.Filename = storage.DatedKey(s.now(), "main_"+suffix+imageproc.OutputExt)
	}

	err = s.storage.Save(ctx, item.Filename, bytes.NewReader(result.Data), int64(len(result.Data)), result.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	if itemType == models.GalleryTypeMain {
		var replaced int64
		replaced, err = s.repo.ReplaceMain(ctx, item)
		if err == nil && replaced > 0 {
			s.log.Info("replaced main image", zap.Int64("previous", replaced), zap.String("filename", item.Filename))
		}
	} else {
		err = s.repo.Create(ctx, item)
	}
	if err != nil {
		if rmErr := s.storage.Remove(ctx, item.Filename); rmErr != nil {
			s.log.Warn("failed to remove orphaned upload", zap.String("filename", item.Filename), zap.Error(rmErr))
		}
		return nil, err
	}

	s.log.Info("image uploaded",
		zap.Int64("id", item.ID),
		zap.String("type", item.Type),
		zap.String("filename", item.Filename),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.String("size", humanize.IBytes(uint64(len(result.Data)))),
	)

	uploaded := s.withURL(*item)
	return &uploaded, nil
}

func (s *galleryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return notFound(err)
	}

	s.log.Info("image soft deleted", zap.Int64("id", id))
	return nil
}

type rename struct {
	from, to string
}

// Reorder moves source to the position of target, renumbers the active gallery
// 1..N and renames every file whose name no longer encodes its position.
func (s *galleryService) Reorder(ctx context.Context, sourceID, targetID int64) ([]models.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []int64{sourceID, targetID} {
		if err := s.checkReorderable(ctx, id); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.ListActiveGallery(ctx)
	if err != nil {
		return nil, err
	}

	from, to := indexOf(items, sourceID), indexOf(items, targetID)
	if from < 0 || to < 0 {
		return nil, ErrNotFound
	}
	items = move(items, from, to)

	var (
		updates []repository.OrderUpdate
		renames []rename
	)
	for i := range items {
		order := i + 1
		key := positionKey(items[i].Filename, order)

		if key != items[i].Filename {
			renames = append(renames, rename{from: items[i].Filename, to: key})
		}
		if key != items[i].Filename || order != items[i].OrderIndex {
			updates = append(updates, repository.OrderUpdate{ID: items[i].ID, OrderIndex: order, Filename: key})
		}

		items[i].OrderIndex = order
		items[i].Filename = key
	}

	done, err := s.applyRenames(ctx, renames)
	if err != nil {
		s.revertRenames(ctx, done)
		return nil, fmt.Errorf("rename gallery files: %w", err)
	}

	if err := s.repo.UpdateOrder(ctx, updates); err != nil {
		s.revertRenames(ctx, done)
		return nil, notFound(err)
	}

	s.log.Info("gallery reordered",
		zap.Int64("source", sourceID),
		zap.Int64("target", targetID),
		zap.Int("renamed", len(done)),
	)

	for i := range items {
		items[i] = s.withURL(items[i])
	}

	return items, nil
}

func (s *galleryService) checkReorderable(ctx context.Context, id int64) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if item.IsDeleted() {
		return ErrNotFound
	}
	if item.Type != models.GalleryTypeGallery {
		return ErrNotGalleryItem
	}
	return nil
}

func (s *galleryService) applyRenames(ctx context.Context, renames []rename) ([]rename, error) {
	done := make([]rename, 0, len(renames))
	for _, r := range renames {
		if err := s.storage.Rename(ctx, r.from, r.to); err != nil {
			return done, fmt.Errorf("%s -> %s: %w", r.from, r.to, err)
		}
		done = append(done, r)
	}
	return done, nil
}

// revertRenames undoes completed renames in reverse order. Failures are logged.
func (s *galleryService) revertRenames(ctx context.Context, done []rename) {
	for i := len(done) - 1; i >= 0; i-- {
		r := done[i]
		if err := s.storage.Rename(ctx, r.to, r.from); err != nil {
			s.log.Error("failed to revert gallery rename",
				zap.String("from", r.to),
				zap.String("to", r.from),
				zap.Error(err),
			)
		}
	}
}

func (s *galleryService) Purge(ctx context.Context, olderThan time.Duration) (*PurgeResult, error) {
	items, err := s.repo.ListPurgeable(ctx, s.now().Add(-olderThan))
	if err != nil {
		return nil, err
	}

	result := &PurgeResult{}
	for _, item := range items {
		size, err := s.storage.Size(ctx, item.Filename)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("failed to stat purged image", zap.Int64("id", item.ID), zap.Error(err))
		}

		if err := s.storage.Remove(ctx, item.Filename); err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("failed to remove purged image", zap.Int64("id", item.ID), zap.String("filename", item.Filename), zap.Error(err))
		}

		if err := s.repo.HardDelete(ctx, item.ID); err != nil {
			s.log.Error("failed to purge gallery row", zap.Int64("id", item.ID), zap.Error(err))
			continue
		}

		result.Removed++
		result.Bytes += size
	}

	return result, nil
}

func indexOf(items []models.GalleryItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func move(items []models.GalleryItem, from, to int) []models.GalleryItem {
	if from == to {
		return items
	}

	item := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]models.GalleryItem{item}, items[to:]...)...)
	return items
}

func positionName(order int, suffix, ext string) string {
	return fmt.Sprintf("%03d_%s%s", order, suffix, ext)
}

// positionKey rewrites the order prefix of key's file name, keeping its folder,
// suffix and extension. Names without a prefix keep their whole stem as suffix.
func positionKey(key string, order int) string {
	dir, base := path.Split(key)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	suffix := positionPrefix.ReplaceAllString(stem, "")
	if suffix == "" {
		suffix = stem
	}

	return dir + positionName(order, suffix, ext)
}
