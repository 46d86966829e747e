// Package sku genera los identificadores de producto.
//
// Un SKU tiene la forma PPTTTTCCCC: prefijo de dos letras del tipo, los
// últimos cuatro dígitos del timestamp en milisegundos y un contador
// persistente de cuatro dígitos que vuelve a 1 después de 9999. Dos
// llamadas con el mismo sufijo de timestamp y contador producen el mismo
// SKU; quien necesite unicidad debe comprobarla.
package sku

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"catalog-manager/internal/store"
)

// MaxCounter es el periodo del contador
const MaxCounter = 9999

type Generator struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
	log   *zap.Logger
}

type Option func(*Generator)

// WithClock reemplaza el reloj, útil en tests
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

func NewGenerator(s store.Store, opts ...Option) *Generator {
	g := &Generator{
		store: s,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate construye un SKU para el tipo y avanza el contador persistido.
// El contador avanza aunque el SKU no llegue a usarse.
func (g *Generator) Generate(ctx context.Context, typeTag string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	counter, err := g.counter(ctx)
	if err != nil {
		return "", err
	}

	millis := strconv.FormatInt(g.now().UnixMilli(), 10)
	sku := prefix(typeTag) + lastDigits(millis, 4) + fmt.Sprintf("%04d", counter)

	next := counter%MaxCounter + 1
	if err := g.store.Write(ctx, store.SKUCounterKey, strconv.Itoa(next)); err != nil {
		return "", err
	}

	return sku, nil
}

// counter lee el contador; si falta o está corrupto empieza en 1
func (g *Generator) counter(ctx context.Context) (int, error) {
	raw, ok, err := g.store.Read(ctx, store.SKUCounterKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > MaxCounter {
		g.log.Warn("invalid sku counter, restarting at 1", zap.String("value", raw))
		return 1, nil
	}
	return n, nil
}

func prefix(typeTag string) string {
	r := []rune(typeTag)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
