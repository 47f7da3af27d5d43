package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/GemClicker_Go/internal/logger"
)

// AuthMiddleware validates the API key. An empty apiKey disables the check,
// which is the default for a game served on localhost.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts hits per IP inside a fixed window. Callers hold the
// detector mutex.
type ipWindow struct {
	counts map[string]int
	start  time.Time
	length time.Duration
}

func newIPWindow(length time.Duration, now time.Time) *ipWindow {
	return &ipWindow{counts: make(map[string]int), start: now, length: length}
}

// hit records one hit for ip and returns its count in the current window.
func (w *ipWindow) hit(ip string, now time.Time) int {
	if now.Sub(w.start) > w.length {
		clear(w.counts)
		w.start = now
	}
	w.counts[ip]++
	return w.counts[ip]
}

func (w *ipWindow) count(ip string) int {
	return w.counts[ip]
}

// SuspiciousActivityDetector tracks failed API key checks and request rates per IP.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	limit      int
	failedAuth *ipWindow
	requests   *ipWindow
	now        func() time.Time
}

// NewSuspiciousActivityDetector allows limit requests per IP in each window.
// A non-positive limit disables rate limiting.
func NewSuspiciousActivityDetector(limit int, window time.Duration) *SuspiciousActivityDetector {
	if window <= 0 {
		window = DefaultRateWindow
	}
	start := time.Now()
	return &SuspiciousActivityDetector{
		limit:      limit,
		failedAuth: newIPWindow(window, start),
		requests:   newIPWindow(window, start),
		now:        time.Now,
	}
}

// RecordFailedAuth counts a rejected API key and alerts past FailedAuthAlertCount.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	n := s.failedAuth.hit(ip, s.now())
	s.mu.Unlock()

	if n >= FailedAuthAlertCount {
		logger.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest counts a request and returns false once the IP is over the limit.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	n := s.requests.hit(ip, s.now())
	s.mu.Unlock()

	if s.limit <= 0 || n <= s.limit {
		return true
	}
	if n%highRateLogEveryCount == 0 {
		logger.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// RequestCount returns the requests seen from ip in the current window.
func (s *SuspiciousActivityDetector) RequestCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests.count(ip)
}

// RateLimitMiddleware rejects clients that exceed the detector's request limit.
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only when
// the direct peer is one of trustedProxies, and then its rightmost entry wins.
func extractIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !slices.Contains(trustedProxies, peer) {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
