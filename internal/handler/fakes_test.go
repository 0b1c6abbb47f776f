package handler

import (
	"context"
	"database/sql"

	"github.com/vividh/dairy-ledger/internal/model"
	"github.com/vividh/dairy-ledger/internal/repository"
	"github.com/vividh/dairy-ledger/internal/utils"
)

// In-memory store fakes backing the handler tests. They mirror the
// error contracts of the repository package: sql.ErrNoRows for missing
// rows, repository.ErrUsernameExists for duplicate usernames.

type fakeAccounts struct {
	nextID   uint64
	accounts map[string]model.Account // keyed by username
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: map[string]model.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, name, role, username, password string, cost int) (uint64, error) {
	if _, ok := f.accounts[username]; ok {
		return 0, repository.ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	f.nextID++
	f.accounts[username] = model.Account{
		ID: f.nextID, Name: name, Role: role, Username: username, PasswordHash: hash,
	}
	return f.nextID, nil
}

func (f *fakeAccounts) GetByUsername(_ context.Context, username string) (model.Account, error) {
	a, ok := f.accounts[username]
	if !ok {
		return model.Account{}, sql.ErrNoRows
	}
	return a, nil
}

func (f *fakeAccounts) InfoByUsername(_ context.Context, username string) (model.UserInfo, error) {
	a, ok := f.accounts[username]
	if !ok {
		return model.UserInfo{}, sql.ErrNoRows
	}
	return model.UserInfo{UserID: a.ID, Name: a.Name, Role: a.Role}, nil
}

func (f *fakeAccounts) ListBuyers(_ context.Context) ([]model.Party, error) {
	out := []model.Party{}
	for _, a := range f.accounts {
		if a.Role == model.RoleBuyer {
			out = append(out, model.Party{ID: a.ID, Name: a.Name})
		}
	}
	return out, nil
}

type fakePairings struct {
	nextID   uint64
	pairings map[uint64]model.Pairing // keyed by seller id
}

func newFakePairings() *fakePairings {
	return &fakePairings{pairings: map[uint64]model.Pairing{}}
}

func (f *fakePairings) GetBySeller(_ context.Context, sellerID uint64) (model.Pairing, error) {
	p, ok := f.pairings[sellerID]
	if !ok {
		return model.Pairing{}, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakePairings) UpdateBuyer(_ context.Context, sellerID, buyerID uint64, buyerName string) (model.Pairing, error) {
	p, ok := f.pairings[sellerID]
	if !ok {
		return model.Pairing{}, sql.ErrNoRows
	}
	p.BuyerID = buyerID
	p.BuyerName = buyerName
	f.pairings[sellerID] = p
	return p, nil
}

func (f *fakePairings) Insert(_ context.Context, p model.Pairing) (model.Pairing, error) {
	f.nextID++
	p.ID = f.nextID
	f.pairings[p.SellerID] = p
	return p, nil
}

func (f *fakePairings) SellersByBuyer(_ context.Context, buyerID uint64) ([]model.Party, error) {
	out := []model.Party{}
	for _, p := range f.pairings {
		if p.BuyerID == buyerID {
			out = append(out, model.Party{ID: p.SellerID, Name: p.SellerName})
		}
	}
	return out, nil
}

func (f *fakePairings) BuyerBySeller(_ context.Context, sellerID uint64) ([]model.Party, error) {
	out := []model.Party{}
	if p, ok := f.pairings[sellerID]; ok {
		out = append(out, model.Party{ID: p.BuyerID, Name: p.BuyerName})
	}
	return out, nil
}

type fakeMilk struct {
	nextID  uint64
	entries map[uint64]model.MilkEntry
}

func newFakeMilk() *fakeMilk { return &fakeMilk{entries: map[uint64]model.MilkEntry{}} }

func (f *fakeMilk) ExistingID(_ context.Context, sellerID, buyerID uint64, date, shift string) (uint64, bool, error) {
	for _, e := range f.entries {
		if e.SellerID == sellerID && e.BuyerID == buyerID && e.Date == date && e.Shift == shift {
			return e.ID, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeMilk) Insert(_ context.Context, e model.MilkEntry) (model.MilkEntry, error) {
	f.nextID++
	e.ID = f.nextID
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeMilk) OwnerOf(_ context.Context, id uint64) (uint64, error) {
	e, ok := f.entries[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return e.BuyerID, nil
}

func (f *fakeMilk) Update(_ context.Context, id uint64, date string, litres, fat float64, shift string) (model.MilkEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return model.MilkEntry{}, sql.ErrNoRows
	}
	e.Date, e.Litres, e.Fat, e.Shift = date, litres, fat, shift
	f.entries[id] = e
	return e, nil
}

func (f *fakeMilk) Delete(_ context.Context, id uint64) (model.MilkEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return model.MilkEntry{}, sql.ErrNoRows
	}
	delete(f.entries, id)
	return e, nil
}

func (f *fakeMilk) ListBySeller(_ context.Context, sellerID uint64) ([]model.MilkEntry, error) {
	out := []model.MilkEntry{}
	for _, e := range f.entries {
		if e.SellerID == sellerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeMilk) SumLitresFat(_ context.Context, buyerID, sellerID uint64, start, end string) (float64, error) {
	// Dates are ISO strings, so lexicographic comparison is date order.
	total := 0.0
	for _, e := range f.entries {
		if e.BuyerID == buyerID && e.SellerID == sellerID && e.Date >= start && e.Date <= end {
			total += e.Litres * e.Fat
		}
	}
	return total, nil
}

type fakeTxns struct {
	nextID uint64
	txns   []model.Transaction
}

func (f *fakeTxns) Insert(_ context.Context, t model.Transaction) (model.Transaction, error) {
	f.nextID++
	t.ID = f.nextID
	f.txns = append(f.txns, t)
	return t, nil
}

func (f *fakeTxns) ListBySeller(_ context.Context, sellerID uint64) ([]model.TransactionDetail, error) {
	out := []model.TransactionDetail{}
	for _, t := range f.txns {
		if t.SellerID == sellerID {
			out = append(out, model.TransactionDetail{
				StartDate: t.StartDate, EndDate: t.EndDate, Rate: t.Rate, TotalAmount: t.TotalAmount,
			})
		}
	}
	return out, nil
}

type fakeBlacklist struct {
	nextID uint64
	tokens []string
}

func (f *fakeBlacklist) Add(_ context.Context, token string) (uint64, error) {
	f.nextID++
	f.tokens = append(f.tokens, token)
	return f.nextID, nil
}

func (f *fakeBlacklist) Contains(_ context.Context, token string) (bool, error) {
	for _, t := range f.tokens {
		if t == token {
			return true, nil
		}
	}
	return false, nil
}
