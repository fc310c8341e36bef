package media

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"storehub-server/internal/config"
	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/review"
	"storehub-server/internal/infrastructure/metrics"
)

// ErrFileNull is returned by delete operations when the target entity has no
// media record to delete.
var ErrFileNull = apperrors.New(apperrors.KindValidation, "no media to delete")

// Service is the request-facing upload orchestrator. Every operation
// validates and authorizes synchronously, enqueues at most one deletion job
// (for the record being overwritten) followed by one upload job, and returns
// a placeholder receipt without waiting on the blob store. Entity media
// records are never mutated on the upload path; the worker pool applies the
// result once the blob store call resolves.
type Service struct {
	limits      Limits
	placeholder string

	queue      Publisher
	policy     AccessPolicy
	categories catalog.CategoryRepository
	brands     catalog.BrandRepository
	users      catalog.UserRepository
	products   catalog.ProductRepository
	reviews    review.Repository
	log        zerolog.Logger
}

func NewService(
	cfg *config.Config,
	queue Publisher,
	policy AccessPolicy,
	categories catalog.CategoryRepository,
	brands catalog.BrandRepository,
	users catalog.UserRepository,
	products catalog.ProductRepository,
	reviews review.Repository,
	log zerolog.Logger,
) *Service {
	return &Service{
		limits: Limits{
			MaxImageBytes:   cfg.MaxImageBytes,
			MaxVideoBytes:   cfg.MaxVideoBytes,
			MaxGalleryFiles: cfg.MaxGalleryFiles,
		},
		placeholder: cfg.PlaceholderURL,
		queue:       queue,
		policy:      policy,
		categories:  categories,
		brands:      brands,
		users:       users,
		products:    products,
		reviews:     reviews,
		log:         log.With().Str("component", "upload-orchestrator").Logger(),
	}
}

// UploadCategoryImage replaces a category's main image.
func (s *Service) UploadCategoryImage(ctx context.Context, actorID string, categoryID int64, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindCategoryImage, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return nil, err
	}
	category, err := s.getCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindCategoryImage, formatID(categoryID), locationsOf(category.ImageURL), [][]byte{file})
}

// UploadCategoryIcon replaces a category's icon.
func (s *Service) UploadCategoryIcon(ctx context.Context, actorID string, categoryID int64, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindCategoryIcon, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return nil, err
	}
	category, err := s.getCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindCategoryIcon, formatID(categoryID), locationsOf(category.IconURL), [][]byte{file})
}

// DeleteCategoryImage clears a category's main image and reclaims the blob.
func (s *Service) DeleteCategoryImage(ctx context.Context, actorID string, categoryID int64) error {
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return err
	}
	category, err := s.getCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.ImageURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindCategoryImage, formatID(categoryID), []string{*category.ImageURL}); err != nil {
		return err
	}
	return s.categories.SetImageURL(ctx, categoryID, nil)
}

// DeleteCategoryIcon clears a category's icon and reclaims the blob.
func (s *Service) DeleteCategoryIcon(ctx context.Context, actorID string, categoryID int64) error {
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return err
	}
	category, err := s.getCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.IconURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindCategoryIcon, formatID(categoryID), []string{*category.IconURL}); err != nil {
		return err
	}
	return s.categories.SetIconURL(ctx, categoryID, nil)
}

// UploadBrandLogo replaces a brand's logo.
func (s *Service) UploadBrandLogo(ctx context.Context, actorID string, brandID int64, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindBrandLogo, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return nil, err
	}
	brand, err := s.getBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindBrandLogo, formatID(brandID), locationsOf(brand.LogoURL), [][]byte{file})
}

// DeleteBrandLogo clears a brand's logo and reclaims the blob.
func (s *Service) DeleteBrandLogo(ctx context.Context, actorID string, brandID int64) error {
	if err := s.policy.CanManageCatalog(ctx, actorID); err != nil {
		return err
	}
	brand, err := s.getBrand(ctx, brandID)
	if err != nil {
		return err
	}
	if brand.LogoURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindBrandLogo, formatID(brandID), []string{*brand.LogoURL}); err != nil {
		return err
	}
	return s.brands.SetLogoURL(ctx, brandID, nil)
}

// UploadUserImage replaces the acting user's own avatar.
func (s *Service) UploadUserImage(ctx context.Context, actorID string, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindUserImage, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return s.enqueueReplace(ctx, KindUserImage, actorID, locationsOf(user.ImageURL), [][]byte{file})
}

// DeleteUserImage clears the acting user's avatar and reclaims the blob.
func (s *Service) DeleteUserImage(ctx context.Context, actorID string) error {
	user, err := s.users.Get(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.New(apperrors.KindNotFound, "user not found")
	}
	if user.ImageURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindUserImage, actorID, []string{*user.ImageURL}); err != nil {
		return err
	}
	return s.users.SetImageURL(ctx, actorID, nil)
}

// UploadProductMainImage replaces a product's main image.
func (s *Service) UploadProductMainImage(ctx context.Context, actorID, productID string, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindProductMainImage, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	product, err := s.authorizeProduct(ctx, actorID, productID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindProductMainImage, productID, locationsOf(product.MainImageURL), [][]byte{file})
}

// DeleteProductMainImage clears a product's main image and reclaims the blob.
func (s *Service) DeleteProductMainImage(ctx context.Context, actorID, productID string) error {
	product, err := s.authorizeProduct(ctx, actorID, productID)
	if err != nil {
		return err
	}
	if product.MainImageURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindProductMainImage, productID, []string{*product.MainImageURL}); err != nil {
		return err
	}
	return s.products.SetMainImageURL(ctx, productID, nil)
}

// UploadProductGallery replaces a product's gallery with the given files.
func (s *Service) UploadProductGallery(ctx context.Context, actorID, productID string, files [][]byte) (*Receipt, error) {
	if err := validatePayloads(KindProductGallery, files, s.limits); err != nil {
		return nil, err
	}
	if _, err := s.authorizeProduct(ctx, actorID, productID); err != nil {
		return nil, err
	}
	images, err := s.products.ListImages(ctx, productID)
	if err != nil {
		return nil, err
	}
	old := make([]string, 0, len(images))
	for _, img := range images {
		old = append(old, img.URL)
	}
	return s.enqueueReplace(ctx, KindProductGallery, productID, old, files)
}

// DeleteProductGalleryImages removes the selected images from a product's
// gallery. Every id must exist, be unique and belong to the product.
func (s *Service) DeleteProductGalleryImages(ctx context.Context, actorID, productID string, imageIDs []int64) error {
	if _, err := s.authorizeProduct(ctx, actorID, productID); err != nil {
		return err
	}
	if len(imageIDs) == 0 {
		return apperrors.New(apperrors.KindValidation, "image id list must not be empty")
	}
	unique := make(map[int64]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		unique[id] = struct{}{}
	}
	if len(unique) < len(imageIDs) {
		return apperrors.New(apperrors.KindValidation, "duplicate image ids")
	}

	images, err := s.products.GetImages(ctx, imageIDs)
	if err != nil {
		return err
	}
	if len(images) != len(imageIDs) {
		return apperrors.New(apperrors.KindNotFound, "one or more gallery images not found")
	}
	locations := make([]string, 0, len(images))
	for _, img := range images {
		if img.ProductID != productID {
			return apperrors.New(apperrors.KindValidation, "image does not belong to product")
		}
		locations = append(locations, img.URL)
	}

	if err := s.enqueueDeletion(ctx, KindProductGallery, productID, locations); err != nil {
		return err
	}
	return s.products.DeleteImages(ctx, productID, imageIDs)
}

// UploadProductVideo replaces a product's video.
func (s *Service) UploadProductVideo(ctx context.Context, actorID, productID string, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindProductVideo, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	product, err := s.authorizeProduct(ctx, actorID, productID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindProductVideo, productID, locationsOf(product.VideoURL), [][]byte{file})
}

// DeleteProductVideo clears a product's video and reclaims the blob.
func (s *Service) DeleteProductVideo(ctx context.Context, actorID, productID string) error {
	product, err := s.authorizeProduct(ctx, actorID, productID)
	if err != nil {
		return err
	}
	if product.VideoURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindProductVideo, productID, []string{*product.VideoURL}); err != nil {
		return err
	}
	return s.products.SetVideoURL(ctx, productID, nil)
}

// UploadReviewImages replaces a review's image set.
func (s *Service) UploadReviewImages(ctx context.Context, actorID string, reviewID int64, files [][]byte) (*Receipt, error) {
	if err := validatePayloads(KindReviewImages, files, s.limits); err != nil {
		return nil, err
	}
	if _, err := s.authorizeReview(ctx, actorID, reviewID); err != nil {
		return nil, err
	}
	images, err := s.reviews.ListImages(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	old := make([]string, 0, len(images))
	for _, img := range images {
		old = append(old, img.URL)
	}
	return s.enqueueReplace(ctx, KindReviewImages, formatID(reviewID), old, files)
}

// UploadReviewVideo replaces a review's video.
func (s *Service) UploadReviewVideo(ctx context.Context, actorID string, reviewID int64, file []byte) (*Receipt, error) {
	if err := validatePayloads(KindReviewVideo, [][]byte{file}, s.limits); err != nil {
		return nil, err
	}
	rev, err := s.authorizeReview(ctx, actorID, reviewID)
	if err != nil {
		return nil, err
	}
	return s.enqueueReplace(ctx, KindReviewVideo, formatID(reviewID), locationsOf(rev.VideoURL), [][]byte{file})
}

// DeleteReviewVideo clears a review's video and reclaims the blob.
func (s *Service) DeleteReviewVideo(ctx context.Context, actorID string, reviewID int64) error {
	rev, err := s.authorizeReview(ctx, actorID, reviewID)
	if err != nil {
		return err
	}
	if rev.VideoURL == nil {
		return ErrFileNull
	}
	if err := s.enqueueDeletion(ctx, KindReviewVideo, formatID(reviewID), []string{*rev.VideoURL}); err != nil {
		return err
	}
	return s.reviews.SetVideoURL(ctx, reviewID, nil)
}

// enqueueReplace publishes the deletion of the old record value (when one
// exists) strictly before the new upload job, so a worker never races a
// delete against a still-in-flight upload for the same target.
func (s *Service) enqueueReplace(ctx context.Context, kind Kind, targetID string, old []string, payloads [][]byte) (*Receipt, error) {
	if len(old) > 0 {
		if err := s.enqueueDeletion(ctx, kind, targetID, old); err != nil {
			return nil, err
		}
	}

	job := UploadJob{
		TargetID:  targetID,
		Kind:      kind,
		Payloads:  payloads,
		CreatedAt: time.Now(),
	}
	if err := s.queue.PublishUpload(ctx, job); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "enqueue upload job", err)
	}
	metrics.JobsPublished.WithLabelValues("upload", string(kind)).Inc()

	s.log.Info().
		Str("kind", string(kind)).
		Str("target_id", targetID).
		Int("files", len(payloads)).
		Msg("upload job enqueued")

	placeholders := make([]string, len(payloads))
	for i := range placeholders {
		placeholders[i] = s.placeholder
	}
	return &Receipt{
		TargetID:     targetID,
		Kind:         kind,
		Status:       StatusProcessing,
		Placeholders: placeholders,
	}, nil
}

func (s *Service) enqueueDeletion(ctx context.Context, kind Kind, targetID string, locations []string) error {
	job := DeletionJob{
		TargetID:  targetID,
		Kind:      kind,
		Locations: locations,
	}
	if err := s.queue.PublishDeletion(ctx, job); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "enqueue deletion job", err)
	}
	metrics.JobsPublished.WithLabelValues("deletion", string(kind)).Inc()
	return nil
}

func (s *Service) getCategory(ctx context.Context, id int64) (*catalog.Category, error) {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "category not found")
	}
	return category, nil
}

func (s *Service) getBrand(ctx context.Context, id int64) (*catalog.Brand, error) {
	brand, err := s.brands.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "brand not found")
	}
	return brand, nil
}

func (s *Service) authorizeProduct(ctx context.Context, actorID, productID string) (*catalog.Product, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "product not found")
	}
	if err := s.policy.CanManageProduct(ctx, actorID, productID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) authorizeReview(ctx context.Context, actorID string, reviewID int64) (*review.Review, error) {
	rev, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "review not found")
	}
	if err := s.policy.CanManageReview(ctx, actorID, reviewID); err != nil {
		return nil, err
	}
	return rev, nil
}

func locationsOf(url *string) []string {
	if url == nil {
		return nil
	}
	return []string{*url}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
