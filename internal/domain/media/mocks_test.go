package media_test

import (
	"context"
	"sync"

	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/media"
	"storehub-server/internal/domain/review"
)

// RecordingPublisher captures published jobs in publish order.
type RecordingPublisher struct {
	mu        sync.Mutex
	Uploads   []media.UploadJob
	Deletions []media.DeletionJob
	Order     []string // "upload" / "deletion" per publish
	FailWith  error
}

func (p *RecordingPublisher) PublishUpload(_ context.Context, job media.UploadJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailWith != nil {
		return p.FailWith
	}
	p.Uploads = append(p.Uploads, job)
	p.Order = append(p.Order, "upload")
	return nil
}

func (p *RecordingPublisher) PublishDeletion(_ context.Context, job media.DeletionJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailWith != nil {
		return p.FailWith
	}
	p.Deletions = append(p.Deletions, job)
	p.Order = append(p.Order, "deletion")
	return nil
}

// AllowAllPolicy accepts every actor.
type AllowAllPolicy struct{}

func (AllowAllPolicy) CanManageCatalog(context.Context, string) error         { return nil }
func (AllowAllPolicy) CanManageProduct(context.Context, string, string) error { return nil }
func (AllowAllPolicy) CanManageReview(context.Context, string, int64) error   { return nil }

// DenyAllPolicy rejects every actor with the given error.
type DenyAllPolicy struct{ Err error }

func (p DenyAllPolicy) CanManageCatalog(context.Context, string) error { return p.Err }
func (p DenyAllPolicy) CanManageProduct(context.Context, string, string) error {
	return p.Err
}
func (p DenyAllPolicy) CanManageReview(context.Context, string, int64) error { return p.Err }

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository.
type MockCategoryRepository struct {
	GetFunc         func(ctx context.Context, id int64) (*catalog.Category, error)
	SetImageURLFunc func(ctx context.Context, id int64, url *string) error
	SetIconURLFunc  func(ctx context.Context, id int64, url *string) error
}

func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) SetImageURL(ctx context.Context, id int64, url *string) error {
	if m.SetImageURLFunc != nil {
		return m.SetImageURLFunc(ctx, id, url)
	}
	return nil
}

func (m *MockCategoryRepository) SetIconURL(ctx context.Context, id int64, url *string) error {
	if m.SetIconURLFunc != nil {
		return m.SetIconURLFunc(ctx, id, url)
	}
	return nil
}

// MockBrandRepository is a mock implementation of catalog.BrandRepository.
type MockBrandRepository struct {
	GetFunc        func(ctx context.Context, id int64) (*catalog.Brand, error)
	SetLogoURLFunc func(ctx context.Context, id int64, url *string) error
}

func (m *MockBrandRepository) Get(ctx context.Context, id int64) (*catalog.Brand, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBrandRepository) SetLogoURL(ctx context.Context, id int64, url *string) error {
	if m.SetLogoURLFunc != nil {
		return m.SetLogoURLFunc(ctx, id, url)
	}
	return nil
}

// MockUserRepository is a mock implementation of catalog.UserRepository.
type MockUserRepository struct {
	GetFunc         func(ctx context.Context, id string) (*catalog.User, error)
	SetImageURLFunc func(ctx context.Context, id string, url *string) error
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*catalog.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) SetImageURL(ctx context.Context, id string, url *string) error {
	if m.SetImageURLFunc != nil {
		return m.SetImageURLFunc(ctx, id, url)
	}
	return nil
}

// MockProductRepository is a mock implementation of catalog.ProductRepository.
type MockProductRepository struct {
	GetFunc                func(ctx context.Context, id string) (*catalog.Product, error)
	SetMainImageURLFunc    func(ctx context.Context, id string, url *string) error
	SetVideoURLFunc        func(ctx context.Context, id string, url *string) error
	SetRatingFunc          func(ctx context.Context, id string, rating *float64) error
	ListImagesFunc         func(ctx context.Context, productID string) ([]catalog.ProductImage, error)
	GetImagesFunc          func(ctx context.Context, ids []int64) ([]catalog.ProductImage, error)
	ReplaceImagesFunc      func(ctx context.Context, productID string, urls []string) error
	DeleteImagesFunc       func(ctx context.Context, productID string, ids []int64) error
	ListRatingsByStoreFunc func(ctx context.Context, storeID string) ([]float64, error)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*catalog.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) SetMainImageURL(ctx context.Context, id string, url *string) error {
	if m.SetMainImageURLFunc != nil {
		return m.SetMainImageURLFunc(ctx, id, url)
	}
	return nil
}

func (m *MockProductRepository) SetVideoURL(ctx context.Context, id string, url *string) error {
	if m.SetVideoURLFunc != nil {
		return m.SetVideoURLFunc(ctx, id, url)
	}
	return nil
}

func (m *MockProductRepository) SetRating(ctx context.Context, id string, rating *float64) error {
	if m.SetRatingFunc != nil {
		return m.SetRatingFunc(ctx, id, rating)
	}
	return nil
}

func (m *MockProductRepository) ListImages(ctx context.Context, productID string) ([]catalog.ProductImage, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockProductRepository) GetImages(ctx context.Context, ids []int64) ([]catalog.ProductImage, error) {
	if m.GetImagesFunc != nil {
		return m.GetImagesFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepository) ReplaceImages(ctx context.Context, productID string, urls []string) error {
	if m.ReplaceImagesFunc != nil {
		return m.ReplaceImagesFunc(ctx, productID, urls)
	}
	return nil
}

func (m *MockProductRepository) DeleteImages(ctx context.Context, productID string, ids []int64) error {
	if m.DeleteImagesFunc != nil {
		return m.DeleteImagesFunc(ctx, productID, ids)
	}
	return nil
}

func (m *MockProductRepository) ListRatingsByStore(ctx context.Context, storeID string) ([]float64, error) {
	if m.ListRatingsByStoreFunc != nil {
		return m.ListRatingsByStoreFunc(ctx, storeID)
	}
	return nil, nil
}

// MockReviewRepository is a mock implementation of review.Repository.
type MockReviewRepository struct {
	GetFunc                  func(ctx context.Context, id int64) (*review.Review, error)
	CreateFunc               func(ctx context.Context, rev *review.Review) error
	HasUserReviewedOrderFunc func(ctx context.Context, userID, orderID string) (bool, error)
	ListRatingsByProductFunc func(ctx context.Context, productID string) ([]float64, error)
	CountByRatingFunc        func(ctx context.Context, productID string) (map[int]int64, error)
	CountContentFunc         func(ctx context.Context, productID string) (review.ContentCounts, error)
	ListImagesFunc           func(ctx context.Context, reviewID int64) ([]review.Image, error)
	ReplaceImagesFunc        func(ctx context.Context, reviewID int64, urls []string) error
	SetVideoURLFunc          func(ctx context.Context, reviewID int64, url *string) error
}

func (m *MockReviewRepository) Get(ctx context.Context, id int64) (*review.Review, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rev)
	}
	return nil
}

func (m *MockReviewRepository) HasUserReviewedOrder(ctx context.Context, userID, orderID string) (bool, error) {
	if m.HasUserReviewedOrderFunc != nil {
		return m.HasUserReviewedOrderFunc(ctx, userID, orderID)
	}
	return false, nil
}

func (m *MockReviewRepository) ListRatingsByProduct(ctx context.Context, productID string) ([]float64, error) {
	if m.ListRatingsByProductFunc != nil {
		return m.ListRatingsByProductFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockReviewRepository) CountByRating(ctx context.Context, productID string) (map[int]int64, error) {
	if m.CountByRatingFunc != nil {
		return m.CountByRatingFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockReviewRepository) CountContent(ctx context.Context, productID string) (review.ContentCounts, error) {
	if m.CountContentFunc != nil {
		return m.CountContentFunc(ctx, productID)
	}
	return review.ContentCounts{}, nil
}

func (m *MockReviewRepository) ListImages(ctx context.Context, reviewID int64) ([]review.Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, reviewID)
	}
	return nil, nil
}

func (m *MockReviewRepository) ReplaceImages(ctx context.Context, reviewID int64, urls []string) error {
	if m.ReplaceImagesFunc != nil {
		return m.ReplaceImagesFunc(ctx, reviewID, urls)
	}
	return nil
}

func (m *MockReviewRepository) SetVideoURL(ctx context.Context, reviewID int64, url *string) error {
	if m.SetVideoURLFunc != nil {
		return m.SetVideoURLFunc(ctx, reviewID, url)
	}
	return nil
}

// pngPayload is a minimal payload that sniffs as image/png.
func pngPayload() []byte {
	return []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
}

// mp4Payload is a minimal payload that sniffs as video/mp4.
func mp4Payload() []byte {
	return []byte{
		0x00, 0x00, 0x00, 0x18,
		'f', 't', 'y', 'p',
		'i', 's', 'o', 'm',
		0x00, 0x00, 0x00, 0x00,
	}
}
