package repository

import (
	"context"

	"medizone/internal/domain/advert"
	"medizone/internal/domain/cart"
	"medizone/internal/domain/catalog"
	"medizone/internal/domain/medicine"
	"medizone/internal/domain/payment"
	"medizone/internal/domain/user"
)

// Repository interfaces consumed by the auth middleware and HTTP handlers.
// Document ids cross these boundaries as hex strings; implementations reject
// malformed ids with a bad-request error.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]user.User, error)
	UpdateRole(ctx context.Context, id, role string) (int64, error)
	UpdateProfile(ctx context.Context, email string, input user.UpdateProfileInput) (int64, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, m *medicine.Medicine) (string, error)
	List(ctx context.Context) ([]medicine.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]medicine.Medicine, error)
	ListBySeller(ctx context.Context, email string) ([]medicine.Medicine, error)
	ListDiscounted(ctx context.Context) ([]medicine.Medicine, error)
}

type CartRepository interface {
	Add(ctx context.Context, item *cart.Item) (string, error)
	List(ctx context.Context) ([]cart.Item, error)
	ListByBuyer(ctx context.Context, email string) ([]cart.Item, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (string, error)
	List(ctx context.Context) ([]payment.Payment, error)
	ListByBuyer(ctx context.Context, email string) ([]payment.Payment, error)
	MarkPaid(ctx context.Context, id string) (int64, error)
}

type SliderRepository interface {
	Create(ctx context.Context, s *catalog.Slider) (string, error)
	List(ctx context.Context) ([]catalog.Slider, error)
	Update(ctx context.Context, id string, input catalog.UpdateSliderInput) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *catalog.Category) (string, error)
	List(ctx context.Context) ([]catalog.Category, error)
	Update(ctx context.Context, id string, input catalog.UpdateCategoryInput) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type AdvertRepository interface {
	Create(ctx context.Context, ad *advert.Advertisement) (string, error)
	List(ctx context.Context) ([]advert.Advertisement, error)
	ListBySeller(ctx context.Context, email string) ([]advert.Advertisement, error)
	SetSlide(ctx context.Context, id string, slide bool) (int64, error)
}
