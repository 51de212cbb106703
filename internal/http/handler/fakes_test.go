package handler

import (
	"context"
	"fmt"

	"medizone/internal/domain/cart"
	"medizone/internal/domain/payment"
	"medizone/internal/domain/user"
)

type fakeUserRepo struct {
	users   map[string]*user.User
	inserts int
}

func newFakeUserRepo(seed ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*user.User{}}
	for _, u := range seed {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (string, error) {
	f.users[u.Email] = u
	f.inserts++
	return fmt.Sprintf("id-%d", f.inserts), nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	users := []user.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, email string, input user.UpdateProfileInput) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Photo != nil {
		u.Photo = *input.Photo
	}
	return 1, nil
}

type fakeCartRepo struct {
	items   []*cart.Item
	deleted []string
}

func (f *fakeCartRepo) Add(ctx context.Context, item *cart.Item) (string, error) {
	f.items = append(f.items, item)
	return fmt.Sprintf("cart-%d", len(f.items)), nil
}

func (f *fakeCartRepo) List(ctx context.Context) ([]cart.Item, error) {
	items := []cart.Item{}
	for _, item := range f.items {
		items = append(items, *item)
	}
	return items, nil
}

func (f *fakeCartRepo) ListByBuyer(ctx context.Context, email string) ([]cart.Item, error) {
	items := []cart.Item{}
	for _, item := range f.items {
		if item.BuyerEmail == email {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id string) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 1, nil
}

func (f *fakeCartRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	f.deleted = append(f.deleted, ids...)
	return int64(len(ids)), nil
}

type fakePaymentRepo struct {
	payments []*payment.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *payment.Payment) (string, error) {
	f.payments = append(f.payments, p)
	return fmt.Sprintf("pay-%d", len(f.payments)), nil
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]payment.Payment, error) {
	payments := []payment.Payment{}
	for _, p := range f.payments {
		payments = append(payments, *p)
	}
	return payments, nil
}

func (f *fakePaymentRepo) ListByBuyer(ctx context.Context, email string) ([]payment.Payment, error) {
	payments := []payment.Payment{}
	for _, p := range f.payments {
		if p.BuyerEmail == email {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (f *fakePaymentRepo) MarkPaid(ctx context.Context, id string) (int64, error) {
	return 1, nil
}

type fakeGateway struct {
	amounts []int64
	secret  string
	err     error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.amounts = append(f.amounts, amountCents)
	return f.secret, nil
}
