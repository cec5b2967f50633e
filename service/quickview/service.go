package quickview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultTimeout bounds every catalog lookup and cart add.
const DefaultTimeout = 10 * time.Second

// CartPath is where the shopper goes after a successful confirm.
const CartPath = "/cart"

// Catalog looks products up by handle.
type Catalog interface {
	Lookup(ctx context.Context, handle string) (Product, error)
}

// CartLine is a cart-add request.
type CartLine struct {
	VariantID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// Cart adds lines to the session-scoped cart identified by token.
type Cart interface {
	Add(ctx context.Context, token string, line CartLine) error
}

// Service opens quick view sessions and performs the add-to-cart sequence.
type Service struct {
	catalog Catalog
	cart    Cart
	rules   BundleRules
	timeout time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithBundleRules replaces the default bundle rules.
func WithBundleRules(rules BundleRules) ServiceOption {
	return func(s *Service) {
		s.rules = rules
	}
}

func NewService(catalog Catalog, cart Cart, opts ...ServiceOption) *Service {
	s := &Service{
		catalog: catalog,
		cart:    cart,
		rules:   DefaultBundleRules(""),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Rules returns the configured bundle rules.
func (s *Service) Rules() BundleRules {
	return s.rules
}

// Open loads handle and starts a fresh selection for it.
func (s *Service) Open(ctx context.Context, cartToken, handle string) (*Session, error) {
	product, err := s.lookup(ctx, handle)
	if err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", handle, err)
	}
	if product.Handle == "" {
		product.Handle = handle
	}
	controls := Normalize(product.Options)
	return &Session{
		svc:       s,
		cartToken: cartToken,
		product:   product,
		controls:  controls,
		selection: NewSelection(product, controls),
		opened:    time.Now(),
	}, nil
}

func (s *Service) lookup(ctx context.Context, handle string) (Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	p, err := s.catalog.Lookup(ctx, handle)
	if err != nil {
		return Product{}, collaboratorError("catalog lookup "+handle, err)
	}
	return p, nil
}

func (s *Service) add(ctx context.Context, token string, line CartLine) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.cart.Add(ctx, token, line); err != nil {
		return collaboratorError("cart add "+line.VariantID, err)
	}
	return nil
}

// collaboratorError keeps domain errors as they are and reports everything
// else, timeouts included, as a network failure.
func collaboratorError(op string, err error) error {
	switch {
	case errors.Is(err, ErrNetwork):
		return err
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrInvalidProduct):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return &NetworkError{Op: op, Err: err}
	}
}

// Session is one open popup: a product, its controls and the shopper's
// selection. Methods are safe for concurrent use; calls are serialized.
type Session struct {
	mu        sync.Mutex
	id        string
	svc       *Service
	cartToken string
	product   Product
	controls  []OptionControl
	selection *Selection
	result    *ConfirmResult
	opened    time.Time
}

func (ss *Session) ID() string { return ss.id }
func (ss *Session) CartToken() string { return ss.cartToken }
func (ss *Session) Product() Product { return ss.product }
func (ss *Session) Controls() []OptionControl { return ss.controls }
func (ss *Session) OpenedAt() time.Time { return ss.opened }

// Choose records a pill click or size pick.
func (ss *Session) Choose(position int, value string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.selection.Set(position, value)
}

func (ss *Session) State() SelectionState {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.selection.State()
}

func (ss *Session) Missing() []MissingOption {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.selection.Missing()
}

func (ss *Session) Chosen() ResolvedSelection {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.selection.Chosen()
}

// Evaluate resolves the selection and evaluates the bundle rules without
// touching the cart.
func (ss *Session) Evaluate() (Variant, []BundleRule, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	variant, err := ss.selection.Resolve()
	if err != nil {
		return Variant{}, nil, err
	}
	fired, err := ss.svc.rules.Evaluate(ss.selection.Chosen())
	if err != nil {
		return variant, nil, err
	}
	return variant, fired, nil
}

// Confirm resolves the selection and adds the variant to the cart, then adds
// the first variant of every fired bundle rule, one after the other.
//
// Resolution and primary add failures are returned as errors and nothing
// else is attempted. Bundle failures leave the primary line in the cart and
// are reported on the result.
func (ss *Session) Confirm(ctx context.Context) (*ConfirmResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.result != nil {
		return nil, ErrAlreadyResolved
	}

	variant, err := ss.selection.Resolve()
	if err != nil {
		return nil, err
	}
	if err := ss.svc.add(ctx, ss.cartToken, CartLine{VariantID: variant.ID, Quantity: 1}); err != nil {
		log.Printf("quickview: %s primary add failed: %v", ss.product.Handle, err)
		return nil, err
	}
	res := &ConfirmResult{Handle: ss.product.Handle, Variant: variant}
	ss.result = res

	fired, err := ss.svc.rules.Evaluate(ss.selection.Chosen())
	if err != nil {
		log.Printf("quickview: %s bundle rules: %v", ss.product.Handle, err)
		res.Bundles = append(res.Bundles, BundleOutcome{Err: err})
		return res, nil
	}
	for _, rule := range fired {
		outcome := ss.svc.addBundle(ctx, ss.cartToken, rule)
		if outcome.Err != nil {
			log.Printf("quickview: bundle %s (%s) skipped: %v", rule.Name, rule.Handle, outcome.Err)
		}
		res.Bundles = append(res.Bundles, outcome)
	}
	return res, nil
}

func (s *Service) addBundle(ctx context.Context, token string, rule BundleRule) BundleOutcome {
	qty := rule.Quantity
	if qty <= 0 {
		qty = 1
	}
	out := BundleOutcome{Rule: rule.Name, Handle: rule.Handle, Quantity: qty}
	product, err := s.lookup(ctx, rule.Handle)
	if err != nil {
		out.Err = err
		return out
	}
	first, ok := product.FirstVariant()
	if !ok {
		out.Err = fmt.Errorf("%s: %w", rule.Handle, ErrNoBundleVariant)
		return out
	}
	out.VariantID = first.ID
	out.Err = s.add(ctx, token, CartLine{VariantID: first.ID, Quantity: qty})
	return out
}

// BundleOutcome reports what happened to one fired bundle rule.
type BundleOutcome struct {
	Rule      string
	Handle    string
	VariantID string
	Quantity  int
	Err       error
}

func (o BundleOutcome) Added() bool { return o.Err == nil }

// ConfirmResult is a successful primary add plus the bundle outcomes.
type ConfirmResult struct {
	Handle  string
	Variant Variant
	Bundles []BundleOutcome
}

// Complete reports whether every fired bundle was added as well.
func (r *ConfirmResult) Complete() bool {
	return r.Err() == nil
}

// Err joins the bundle failures, nil when there are none.
func (r *ConfirmResult) Err() error {
	var errs []error
	for _, b := range r.Bundles {
		if b.Err != nil {
			errs = append(errs, b.Err)
		}
	}
	return errors.Join(errs...)
}
