package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidItemID    = errors.New("invalid item id")
	ErrInvalidItemInput = errors.New("invalid item input")
)

const catalogCacheTTL = 5 * time.Minute

// ICatalogUseCase exposes the sellable catalog to the customization flow and
// the back-office item administration.

type ICatalogUseCase interface {
	ListCatalog(ctx context.Context) ([]entities.Item, error)
	GroupedCatalog(ctx context.Context) (map[entities.ItemCategory][]entities.Item, error)
	GetItem(ctx context.Context, id string) (entities.Item, error)
	CreateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error)
	SetItemAvailability(ctx context.Context, id string, available bool) (entities.Item, error)
	InvalidateCache()
}

// CatalogUseCase caches the catalog for a bounded window and de-duplicates
// concurrent fetches through a single flight, so readers within the window
// never hit the table. The cache is owned by this explicitly constructed
// object (injected at the application root), not a module global, so tests
// can reset it between cases.

type CatalogUseCase struct {
	repo interfaces.IItemRepository
	ttl  time.Duration
	now  func() time.Time

	flight singleflight.Group

	mu        sync.RWMutex
	cached    []entities.Item
	fetchedAt time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IItemRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, ttl: catalogCacheTTL, now: time.Now}
}

// NewCatalogUseCaseWithClock lets tests control the cache window.
func NewCatalogUseCaseWithClock(repo interfaces.IItemRepository, ttl time.Duration, now func() time.Time) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, ttl: ttl, now: now}
}

func (u *CatalogUseCase) ListCatalog(ctx context.Context) ([]entities.Item, error) {
	u.mu.RLock()
	if u.cached != nil && u.now().Sub(u.fetchedAt) < u.ttl {
		cached := u.cached
		u.mu.RUnlock()
		return cached, nil
	}
	u.mu.RUnlock()

	v, err, _ := u.flight.Do("catalog", func() (interface{}, error) {
		items, err := u.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		u.mu.Lock()
		u.cached = items
		u.fetchedAt = u.now()
		u.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.Item), nil
}

func (u *CatalogUseCase) GroupedCatalog(ctx context.Context) (map[entities.ItemCategory][]entities.Item, error) {
	items, err := u.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return entities.GroupByCategory(items), nil
}

func (u *CatalogUseCase) GetItem(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if item.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	item.Description = strings.TrimSpace(item.Description)
	if item.Description == "" || item.Price < 0 || !item.Category.Known() {
		return entities.Item{}, ErrInvalidItemInput
	}

	now := u.now().UTC()
	item.ID = uuid.NewString()
	item.Available = true
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.Item{}, err
	}
	u.InvalidateCache()
	return created, nil
}

func (u *CatalogUseCase) UpdateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return entities.Item{}, ErrInvalidItemID
	}
	item.Description = strings.TrimSpace(item.Description)
	if item.Description == "" || item.Price < 0 || !item.Category.Known() {
		return entities.Item{}, ErrInvalidItemInput
	}

	item.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.Item{}, err
	}
	if updated.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	u.InvalidateCache()
	return updated, nil
}

func (u *CatalogUseCase) SetItemAvailability(ctx context.Context, id string, available bool) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidItemID
	}

	updated, err := u.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return entities.Item{}, err
	}
	if updated.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	u.InvalidateCache()
	return updated, nil
}

// InvalidateCache drops the cached catalog; the next read refetches.
func (u *CatalogUseCase) InvalidateCache() {
	u.mu.Lock()
	u.cached = nil
	u.fetchedAt = time.Time{}
	u.mu.Unlock()
}
