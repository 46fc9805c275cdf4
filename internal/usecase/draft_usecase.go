package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/domain/flow"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidStep         = errors.New("invalid step index")
	ErrStepNotReachable    = errors.New("previous steps incomplete")
	ErrInvalidEventField   = errors.New("unknown event info field")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrEmptyOrder          = errors.New("order has no resolvable line items")
	ErrInvalidEventDetails = errors.New("invalid event details")
)

// DraftView is the read model handed to the HTTP layer: a snapshot of the
// draft plus everything the summary needs (per-step validity, derived line
// items, local estimate and the authoritative price when known).
type DraftView struct {
	SessionID        string
	Draft            entities.EventDraft
	StepValidity     [flow.StepCount]bool
	LineItems        []entities.OrderItem
	LocalEstimate    float64
	BackendPrice     float64 // NaN while unconfirmed
	CalculatingPrice bool
}

// IDraftUseCase is the server-side rendition of the event-customization
// wizard: one mutable draft per session, step-gated navigation, derived
// pricing and final submission.

type IDraftUseCase interface {
	Snapshot(ctx context.Context, sessionID string) (DraftView, error)
	SetEventType(ctx context.Context, sessionID, eventType string) (DraftView, error)
	SetEventInfoField(ctx context.Context, sessionID, field, value string) (DraftView, error)
	ToggleAlcoholicDrink(ctx context.Context, sessionID, itemID string) (DraftView, error)
	ToggleNonAlcoholicDrink(ctx context.Context, sessionID, itemID string) (DraftView, error)
	SetOtherBeverageQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error)
	SetShotQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error)
	SetStaffQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error)
	SelectStructure(ctx context.Context, sessionID, itemID string) (DraftView, error)
	Navigate(ctx context.Context, sessionID string, target int) (DraftView, error)
	Submit(ctx context.Context, sessionID, buyerID string, status entities.OrderStatus) (entities.Order, error)
	Discard(ctx context.Context, sessionID string) error
}

type draftSession struct {
	mu    sync.Mutex
	draft entities.EventDraft
	seq   *flow.Sequencer
}

// DraftUseCase keeps drafts in memory per session and writes them through to
// the draft repository after every mutation. Persistence failures are logged
// and swallowed; the in-memory draft stays authoritative for the session.

type DraftUseCase struct {
	drafts   interfaces.IDraftRepository
	orders   interfaces.IOrderRepository
	itemRepo interfaces.IItemRepository
	catalog  ICatalogUseCase
	now      func() time.Time

	hopInterval time.Duration
	commitDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*draftSession
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(drafts interfaces.IDraftRepository, orders interfaces.IOrderRepository, itemRepo interfaces.IItemRepository, catalog ICatalogUseCase) *DraftUseCase {
	return &DraftUseCase{
		drafts:   drafts,
		orders:   orders,
		itemRepo: itemRepo,
		catalog:  catalog,
		now:      time.Now,
		sessions: map[string]*draftSession{},
	}
}

// SetTransitionIntervals overrides the sequencer timings; tests use
// microsecond hops instead of the presentation defaults.
func (u *DraftUseCase) SetTransitionIntervals(hop, commit time.Duration) {
	u.hopInterval = hop
	u.commitDelay = commit
}

func (u *DraftUseCase) Snapshot(ctx context.Context, sessionID string) (DraftView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return DraftView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(ctx, sessionID, &s.draft), nil
}

func (u *DraftUseCase) SetEventType(ctx context.Context, sessionID, eventType string) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.SelectedEventType = strings.TrimSpace(eventType)
		return nil
	})
}

func (u *DraftUseCase) SetEventInfoField(ctx context.Context, sessionID, field, value string) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		switch field {
		case "name":
			d.EventInfo.Name = value
		case "date":
			d.EventInfo.Date = value
		case "start_time":
			d.EventInfo.StartTime = value
		case "guest_count":
			d.EventInfo.GuestCount = value
		case "duration":
			d.EventInfo.Duration = value
		case "address":
			d.EventInfo.Address = value
		default:
			return ErrInvalidEventField
		}
		return nil
	})
}

func (u *DraftUseCase) ToggleAlcoholicDrink(ctx context.Context, sessionID, itemID string) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.ToggleAlcoholicDrink(itemID)
		return nil
	})
}

func (u *DraftUseCase) ToggleNonAlcoholicDrink(ctx context.Context, sessionID, itemID string) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.ToggleNonAlcoholicDrink(itemID)
		return nil
	})
}

func (u *DraftUseCase) SetOtherBeverageQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.SetOtherBeverageQuantity(itemID, quantity)
		return nil
	})
}

func (u *DraftUseCase) SetShotQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.SetShotQuantity(itemID, quantity)
		return nil
	})
}

func (u *DraftUseCase) SetStaffQuantity(ctx context.Context, sessionID, itemID string, quantity int) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.SetStaffQuantity(itemID, quantity)
		return nil
	})
}

func (u *DraftUseCase) SelectStructure(ctx context.Context, sessionID, itemID string) (DraftView, error) {
	return u.mutate(ctx, sessionID, func(d *entities.EventDraft) error {
		d.SelectStructure(itemID)
		return nil
	})
}

// Navigate validates and starts a step transition. Forward navigation
// (adjacent or jump) requires every step before the target to be valid;
// going back is always allowed. Entering the summary confirms the
// authoritative price exactly once per transition. The committed step
// converges asynchronously while the sequencer animates.
func (u *DraftUseCase) Navigate(ctx context.Context, sessionID string, target int) (DraftView, error) {
	if target < 0 || target >= flow.StepCount {
		return DraftView{}, ErrInvalidStep
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.draft.CurrentStep
	if target == from {
		return u.view(ctx, sessionID, &s.draft), nil
	}

	if target > from && !flow.AllPreviousStepsValid(&s.draft, target) {
		return DraftView{}, fmt.Errorf("%w: step %d", ErrStepNotReachable, flow.FirstInvalidStep(&s.draft, target))
	}

	s.draft.Direction = flow.Direction(from, target)

	if target == flow.StepSummary {
		u.confirmPrice(ctx, sessionID, &s.draft)
	}
	u.persist(ctx, sessionID, s.draft)

	s.seq.Advance(from, target, func(f flow.Frame) {
		s.mu.Lock()
		s.draft.AnimatedStep = f.AnimatedStep
		if f.Committed {
			s.draft.CurrentStep = f.AnimatedStep
			u.persist(context.Background(), sessionID, s.draft)
		}
		s.mu.Unlock()
	})

	return u.view(ctx, sessionID, &s.draft), nil
}

// Submit builds the final order from the draft and persists it. Regardless of
// per-step validity, a draft whose derived line-item list is empty is
// rejected. On success the persisted draft is cleared and the session reset;
// on failure everything stays intact for retry.
func (u *DraftUseCase) Submit(ctx context.Context, sessionID, buyerID string, status entities.OrderStatus) (entities.Order, error) {
	if status != entities.OrderStatusOrcado && status != entities.OrderStatusPendente {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := u.catalog.ListCatalog(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	lineItems := flow.DeriveLineItems(&s.draft, catalog)
	if len(lineItems) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}

	info := s.draft.EventInfo
	endTime, err := flow.EndTime(info.StartTime, info.Duration)
	if err != nil {
		return entities.Order{}, ErrInvalidEventDetails
	}
	guests, err := strconv.Atoi(strings.TrimSpace(info.GuestCount))
	if err != nil || guests < 0 {
		return entities.Order{}, ErrInvalidEventDetails
	}

	total := s.draft.BackendPrice
	if math.IsNaN(total) {
		total = flow.EstimateLocal(lineItems, catalog)
	}

	now := u.now().UTC()
	order := entities.Order{
		ID:           uuid.NewString(),
		BuyerID:      strings.TrimSpace(buyerID),
		EventName:    info.Name,
		EventType:    s.draft.SelectedEventType,
		GuestCount:   guests,
		StartTime:    info.StartTime,
		EndTime:      endTime,
		EventDate:    info.Date,
		PurchaseDate: now.Format("2006-01-02"),
		Address:      info.Address,
		Status:       status,
		Total:        total,
		Items:        lineItems,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	if err := u.drafts.Clear(ctx, sessionID); err != nil {
		log.Printf("[draft][usecase] clear failed session_id=%s err=%v", sessionID, err)
	}
	s.seq.Stop()
	s.draft = entities.NewEventDraft()
	u.dropSession(sessionID)

	log.Printf("[draft][usecase] submit success session_id=%s order_id=%s status=%s total=%.2f", sessionID, created.ID, created.Status, created.Total)
	return created, nil
}

// Discard abandons the session and removes the persisted draft.
func (u *DraftUseCase) Discard(ctx context.Context, sessionID string) error {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := u.drafts.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.seq.Stop()
	s.draft = entities.NewEventDraft()
	u.dropSession(sessionID)
	return nil
}

func (u *DraftUseCase) session(ctx context.Context, sessionID string) (*draftSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	u.mu.Lock()
	if s, ok := u.sessions[sessionID]; ok {
		u.mu.Unlock()
		return s, nil
	}
	u.mu.Unlock()

	// Rehydrate outside the lock; the repository is tolerant of missing or
	// corrupt records and falls back to the empty default.
	draft, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[draft][usecase] load failed session_id=%s err=%v; using empty draft", sessionID, err)
		draft = entities.NewEventDraft()
	}
	draft.Normalize()

	seq := flow.NewSequencer()
	if u.hopInterval > 0 {
		seq = flow.NewSequencerWithIntervals(u.hopInterval, u.commitDelay)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.sessions[sessionID]; ok {
		return s, nil
	}
	s := &draftSession{draft: draft, seq: seq}
	u.sessions[sessionID] = s
	return s, nil
}

func (u *DraftUseCase) dropSession(sessionID string) {
	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()
}

func (u *DraftUseCase) mutate(ctx context.Context, sessionID string, fn func(d *entities.EventDraft) error) (DraftView, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.draft); err != nil {
		return DraftView{}, err
	}
	u.persist(ctx, sessionID, s.draft)
	return u.view(ctx, sessionID, &s.draft), nil
}

// persist writes the full snapshot through; failures are logged, never
// surfaced, so a storage hiccup cannot block the wizard.
func (u *DraftUseCase) persist(ctx context.Context, sessionID string, draft entities.EventDraft) {
	if err := u.drafts.Save(ctx, sessionID, draft.Clone()); err != nil {
		log.Printf("[draft][usecase] save failed session_id=%s err=%v", sessionID, err)
	}
}

// confirmPrice recomputes the authoritative total from fresh repository
// prices. On any failure the NaN sentinel is stored and the summary falls
// back to the local estimate.
func (u *DraftUseCase) confirmPrice(ctx context.Context, sessionID string, d *entities.EventDraft) {
	d.CalculatingPrice = true
	defer func() { d.CalculatingPrice = false }()

	items, err := u.itemRepo.List(ctx)
	if err != nil {
		log.Printf("[draft][usecase] price confirmation failed session_id=%s err=%v", sessionID, err)
		d.BackendPrice = math.NaN()
		return
	}

	lineItems := flow.DeriveLineItems(d, items)
	d.BackendPrice = flow.EstimateLocal(lineItems, items)
	log.Printf("[draft][usecase] price confirmed session_id=%s total=%.2f", sessionID, d.BackendPrice)
}

func (u *DraftUseCase) view(ctx context.Context, sessionID string, d *entities.EventDraft) DraftView {
	view := DraftView{
		SessionID:        sessionID,
		Draft:            d.Clone(),
		BackendPrice:     d.BackendPrice,
		CalculatingPrice: d.CalculatingPrice,
	}
	for step := 0; step < flow.StepCount; step++ {
		view.StepValidity[step] = flow.IsStepValid(d, step)
	}

	// Derivation needs the catalog; a failed read degrades to an empty list
	// rather than failing the snapshot.
	catalog, err := u.catalog.ListCatalog(ctx)
	if err != nil {
		log.Printf("[draft][usecase] catalog unavailable for view session_id=%s err=%v", sessionID, err)
		return view
	}
	view.LineItems = flow.DeriveLineItems(d, catalog)
	view.LocalEstimate = flow.EstimateLocal(view.LineItems, catalog)
	return view
}
