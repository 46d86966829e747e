package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"catalog-manager/internal/models"
	"catalog-manager/internal/sku"
	"catalog-manager/internal/store"
)

var ErrSKUExhausted = errors.New("no free sku available")

// ProductRepository es el único dueño de la colección de productos.
// Cada mutación reescribe la colección completa en el store antes de volver.
type ProductRepository struct {
	mu       sync.RWMutex
	store    store.Store
	skus     *sku.Generator
	now      func() time.Time
	log      *zap.Logger
	products []models.Product
}

type Option func(*ProductRepository)

func WithClock(now func() time.Time) Option {
	return func(r *ProductRepository) { r.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(r *ProductRepository) { r.log = log }
}

// NewProductRepository carga la colección persistida
func NewProductRepository(ctx context.Context, s store.Store, skus *sku.Generator, opts ...Option) (*ProductRepository, error) {
	r := &ProductRepository{
		store: s,
		skus:  skus,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload vuelve a leer la colección desde el store
func (r *ProductRepository) Reload(ctx context.Context) error {
	raw, ok, err := r.store.Read(ctx, store.ProductsKey)
	if err != nil {
		return err
	}

	var products []models.Product
	if ok && raw != "" {
		if products, err = models.DecodeProducts(raw); err != nil {
			return err
		}
	}
	sortNewestFirst(products)

	r.mu.Lock()
	r.products = products
	r.mu.Unlock()
	return nil
}

// Add asigna SKU y fecha de creación, inserta y ordena.
// El borrador debe venir validado.
func (r *ProductRepository) Add(ctx context.Context, draft models.Draft) (models.Product, error) {
	if draft.Variant == nil {
		return models.Product{}, errors.Wrap(models.ErrUnknownType, "draft without variant")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.freeSKU(ctx, draft.Variant.Type())
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		SKU:       code,
		Name:      draft.Name,
		Price:     draft.Price,
		ImageURL:  draft.ImageURL,
		CreatedAt: r.now().UnixMilli(),
		Variant:   draft.Variant,
	}

	// con el mismo CreatedAt el nuevo queda primero
	next := make([]models.Product, 0, len(r.products)+1)
	next = append(next, product)
	next = append(next, r.products...)
	sortNewestFirst(next)

	if err := r.persist(ctx, next); err != nil {
		return models.Product{}, err
	}

	r.log.Info("product added",
		zap.String("sku", product.SKU),
		zap.String("type", string(product.Type())),
	)
	return product, nil
}

// freeSKU genera SKUs hasta encontrar uno que no esté en la colección.
// Como máximo recorre un periodo completo del contador.
func (r *ProductRepository) freeSKU(ctx context.Context, t models.ProductType) (string, error) {
	for attempt := 0; attempt < sku.MaxCounter; attempt++ {
		code, err := r.skus.Generate(ctx, string(t))
		if err != nil {
			return "", err
		}
		if r.indexOf(code) < 0 {
			return code, nil
		}
		r.log.Warn("sku collision, regenerating", zap.String("sku", code))
	}
	return "", ErrSKUExhausted
}

// Update reemplaza el producto con el mismo SKU conservando su CreatedAt.
// Si el SKU no existe no hace nada y devuelve false.
func (r *ProductRepository) Update(ctx context.Context, product models.Product) (bool, error) {
	if product.Variant == nil {
		return false, errors.Wrap(models.ErrUnknownType, "product without variant")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.Product, len(r.products))
	copy(next, r.products)

	i := indexOf(next, product.SKU)
	if i >= 0 {
		product.CreatedAt = next[i].CreatedAt
		next[i] = product
	}

	if err := r.persist(ctx, next); err != nil {
		return false, err
	}

	if i < 0 {
		r.log.Debug("update ignored, sku not found", zap.String("sku", product.SKU))
		return false, nil
	}
	r.log.Info("product updated", zap.String("sku", product.SKU))
	return true, nil
}

// DeleteMany elimina los productos cuyos SKU estén en la lista.
// Los SKU que no existen se ignoran.
func (r *ProductRepository) DeleteMany(ctx context.Context, skus []string) (int, error) {
	remove := make(map[string]struct{}, len(skus))
	for _, s := range skus {
		remove[s] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if _, ok := remove[p.SKU]; !ok {
			next = append(next, p)
		}
	}

	deleted := len(r.products) - len(next)
	if err := r.persist(ctx, next); err != nil {
		return 0, err
	}

	if deleted > 0 {
		r.log.Info("products deleted", zap.Int("count", deleted))
	}
	return deleted, nil
}

// List devuelve una copia de la colección, más recientes primero
func (r *ProductRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Page devuelve los productos de la página indicada (base 1)
func (r *ProductRepository) Page(page, pageSize int) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if page < 1 || pageSize < 1 {
		return []models.Product{}
	}
	start := (page - 1) * pageSize
	if start >= len(r.products) {
		return []models.Product{}
	}
	end := min(start+pageSize, len(r.products))

	out := make([]models.Product, end-start)
	copy(out, r.products[start:end])
	return out
}

// FindBySKU busca un producto por SKU
func (r *ProductRepository) FindBySKU(code string) (models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(code)
	if i < 0 {
		return models.Product{}, false
	}
	return r.products[i], true
}

func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

// persist escribe la colección y solo entonces la publica en memoria
func (r *ProductRepository) persist(ctx context.Context, products []models.Product) error {
	raw, err := models.EncodeProducts(products)
	if err != nil {
		return err
	}
	if err := r.store.Write(ctx, store.ProductsKey, raw); err != nil {
		return err
	}
	r.products = products
	return nil
}

func (r *ProductRepository) indexOf(code string) int {
	return indexOf(r.products, code)
}

func indexOf(products []models.Product, code string) int {
	for i, p := range products {
		if p.SKU == code {
			return i
		}
	}
	return -1
}

func sortNewestFirst(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt > products[j].CreatedAt
	})
}
