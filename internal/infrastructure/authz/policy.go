package authz

import (
	"context"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/review"
)

// Policy decides who may manage which media records. Catalog media is admin
// only, product media belongs to the owner of the product's store, review
// media belongs to the review's author.
type Policy struct {
	users    catalog.UserRepository
	products catalog.ProductRepository
	stores   catalog.StoreRepository
	reviews  review.Repository
}

func NewPolicy(
	users catalog.UserRepository,
	products catalog.ProductRepository,
	stores catalog.StoreRepository,
	reviews review.Repository,
) *Policy {
	return &Policy{
		users:    users,
		products: products,
		stores:   stores,
		reviews:  reviews,
	}
}

func (p *Policy) CanManageCatalog(ctx context.Context, actorID string) error {
	user, err := p.users.Get(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != catalog.RoleAdmin {
		return apperrors.New(apperrors.KindAuthorization, "catalog media requires admin role")
	}
	return nil
}

func (p *Policy) CanManageProduct(ctx context.Context, actorID, productID string) error {
	user, err := p.users.Get(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.New(apperrors.KindAuthorization, "unknown actor")
	}
	if user.Role == catalog.RoleAdmin {
		return nil
	}

	product, err := p.products.Get(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperrors.New(apperrors.KindNotFound, "product not found")
	}
	store, err := p.stores.Get(ctx, product.StoreID)
	if err != nil {
		return err
	}
	if store == nil || store.OwnerID != actorID {
		return apperrors.New(apperrors.KindAuthorization, "product media requires store ownership")
	}
	return nil
}

func (p *Policy) CanManageReview(ctx context.Context, actorID string, reviewID int64) error {
	rev, err := p.reviews.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev == nil {
		return apperrors.New(apperrors.KindNotFound, "review not found")
	}
	if rev.UserID != actorID {
		return apperrors.New(apperrors.KindAuthorization, "review media belongs to its author")
	}
	return nil
}
