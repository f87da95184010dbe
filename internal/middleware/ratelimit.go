package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const sweepInterval = time.Minute

type bucket struct {
	count   int
	resetAt time.Time
}

// RateLimitStore owns the per-key fixed-window counters shared by every
// limiter built on it. State is process-local: a restart resets all
// counters, and in a multi-process deployment each process counts
// independently.
type RateLimitStore struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimitStore creates a store and starts its background sweep, which
// deletes expired buckets once a minute to bound memory growth.
func NewRateLimitStore() *RateLimitStore {
	s := &RateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Stop terminates the background sweep.
func (s *RateLimitStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *RateLimitStore) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *RateLimitStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int
	for key, b := range s.buckets {
		if now.After(b.resetAt) {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

// hit counts one request against key, lazily creating or resetting the
// bucket when the window has elapsed.
func (s *RateLimitStore) hit(key string, window time.Duration) (count int, resetAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || s.now().After(b.resetAt) {
		b = &bucket{resetAt: s.now().Add(window)}
		s.buckets[key] = b
	}
	b.count++
	return b.count, b.resetAt
}

// RateLimitOptions configures one limiter.
type RateLimitOptions struct {
	Window  time.Duration
	Max     int
	Message string
	KeyFunc func(*http.Request) string
}

// ClientKey is the default limiter key: the client IP from RemoteAddr,
// falling back to the first X-Forwarded-For entry, falling back to a
// shared "unknown" bucket for unidentifiable clients.
func ClientKey(r *http.Request) string {
	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		if host != "" {
			return host
		}
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(ip)
		}
		return strings.TrimSpace(fwd)
	}
	return "unknown"
}

// RateLimit returns middleware enforcing a fixed-window request limit per
// key. Every response on a limited route carries X-RateLimit-Limit,
// X-RateLimit-Remaining and X-RateLimit-Reset; rejected requests get 429
// with Retry-After and never reach the next handler. The limiter itself
// never fails a request for any other reason.
func RateLimit(store *RateLimitStore, opts RateLimitOptions) func(http.Handler) http.Handler {
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Max <= 0 {
		opts.Max = 100
	}
	if opts.Message == "" {
		opts.Message = "Too many requests, please try again later"
	}
	if opts.KeyFunc == nil {
		opts.KeyFunc = ClientKey
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, resetAt := store.hit(opts.KeyFunc(r), opts.Window)

			remaining := opts.Max - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.Max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if count > opts.Max {
				retryAfter := int((resetAt.Sub(store.now()) + time.Second - 1) / time.Second)
				if retryAfter < 0 {
					retryAfter = 0
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeJSONMessage(w, http.StatusTooManyRequests, opts.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthRateLimit throttles credential endpoints: 5 requests per 15 minutes.
func AuthRateLimit(store *RateLimitStore) func(http.Handler) http.Handler {
	return RateLimit(store, RateLimitOptions{
		Window:  15 * time.Minute,
		Max:     5,
		Message: "Too many login attempts, please try again in 15 minutes",
	})
}

// APIRateLimit throttles general API traffic: 100 requests per minute.
func APIRateLimit(store *RateLimitStore) func(http.Handler) http.Handler {
	return RateLimit(store, RateLimitOptions{
		Window:  time.Minute,
		Max:     100,
		Message: "API rate limit exceeded, please slow down",
	})
}

// ExportRateLimit throttles expensive document rendering: 10 per minute.
func ExportRateLimit(store *RateLimitStore) func(http.Handler) http.Handler {
	return RateLimit(store, RateLimitOptions{
		Window:  time.Minute,
		Max:     10,
		Message: "Export rate limit exceeded, please wait before exporting again",
	})
}
