package quickview

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quickview.GO/core/cache"
)

const popupTag = "quickview:popups"

// DefaultSessionTTL is how long an idle popup session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Popups keeps at most one session per popup id.
type Popups struct {
	svc   *Service
	store *cache.Cache
	ttl   time.Duration
}

func NewPopups(svc *Service, store *cache.Cache, ttl time.Duration) *Popups {
	if store == nil {
		store = cache.NewCache()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Popups{svc: svc, store: store, ttl: ttl}
}

func popupKey(id string) string { return "quickview:popup:" + id }

// Open starts a session for handle. Whatever was open under popupID before
// is discarded first, even if loading the new product fails. An empty
// popupID gets a fresh one.
func (p *Popups) Open(ctx context.Context, popupID, cartToken, handle string) (*Session, error) {
	if popupID == "" {
		popupID = uuid.NewString()
	}
	p.store.Delete(popupKey(popupID))
	sess, err := p.svc.Open(ctx, cartToken, handle)
	if err != nil {
		return nil, err
	}
	sess.id = popupID
	p.store.Set(popupKey(popupID), sess, p.ttl, popupTag)
	return sess, nil
}

// Get returns the open session and extends its lifetime.
func (p *Popups) Get(popupID string) (*Session, error) {
	v, ok := p.store.Get(popupKey(popupID))
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess := v.(*Session)
	p.store.Set(popupKey(popupID), sess, p.ttl, popupTag)
	return sess, nil
}

// Close drops the session; closing an unknown popup is a no-op.
func (p *Popups) Close(popupID string) {
	p.store.Delete(popupKey(popupID))
}

// Purge drops expired sessions.
func (p *Popups) Purge() int {
	return p.store.Purge()
}

// Count returns the number of open sessions.
func (p *Popups) Count() int {
	return len(p.store.GetKeysByTag(popupTag))
}
