package middleware

import (
	"net/http"
	"sync"
	"time"

	"recetario/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	count int
	fin   time.Time
}

type limitador struct {
	mu      sync.Mutex
	porIP   map[string]*ventana
	limite  int
	periodo time.Duration
}

// RateLimiter returns a sliding-window per-IP limiter. State is held inside
// the returned handler, so separate engines (and tests) never share windows.
func RateLimiter(limite int, periodo time.Duration) gin.HandlerFunc {
	l := &limitador{porIP: make(map[string]*ventana), limite: limite, periodo: periodo}
	return func(c *gin.Context) {
		if !l.permitir(c.ClientIP()) {
			c.Header("Retry-After", time.Now().Add(periodo).Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func (l *limitador) permitir(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.porIP[ip]
	if !ok || now.After(v.fin) {
		// Expired windows double as garbage collection for idle IPs.
		for otra, w := range l.porIP {
			if now.After(w.fin) {
				delete(l.porIP, otra)
			}
		}
		v = &ventana{fin: now.Add(l.periodo)}
		l.porIP[ip] = v
	}
	v.count++
	return v.count <= l.limite
}
