package sell

import (
	"context"
	"strings"
	"sync"

	"petpos/internal/catalog"
	applog "petpos/internal/log"
)

// ItemSource is the slice of the catalog the search needs.
type ItemSource interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	ListServices(ctx context.Context) ([]catalog.Service, error)
}

type Searcher struct {
	Source ItemSource
}

// Search queries products and services concurrently and merges the matches,
// products first, each side keeping its catalog order. A blank query yields
// nothing; a failed side contributes nothing and does not abort the other.
func (s *Searcher) Search(ctx context.Context, query string) []LineItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var (
		wg       sync.WaitGroup
		products []catalog.Product
		services []catalog.Service
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		if products, err = s.Source.ListProducts(ctx); err != nil {
			applog.Warn(nil, "sell.search.products", map[string]any{"err": err.Error()})
			products = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if services, err = s.Source.ListServices(ctx); err != nil {
			applog.Warn(nil, "sell.search.services", map[string]any{"err": err.Error()})
			services = nil
		}
	}()
	wg.Wait()

	q := strings.ToLower(query)
	var out []LineItem
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, LineItem{
				ID:        p.ID,
				Name:      p.Name,
				UnitPrice: p.Price,
				ImageURL:  p.ImageURL,
				Kind:      KindProduct,
				Quantity:  1,
			})
		}
	}
	for _, sv := range services {
		if strings.Contains(strings.ToLower(sv.Name), q) {
			out = append(out, LineItem{
				ID:        sv.ID,
				Name:      sv.Name,
				UnitPrice: sv.Price,
				Kind:      KindService,
				Quantity:  1,
			})
		}
	}
	return out
}
