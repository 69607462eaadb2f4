package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/shoppy/storefront/internal/domain/entity"
	repo "github.com/shoppy/storefront/internal/domain/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService implements catalog CRUD and the storefront's query
// endpoints. Products are mirrored into Elasticsearch for text search; the
// database stays the source of truth.
type ProductService struct {
	Repo    repo.ProductRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ProductService {
	return &ProductService{Repo: r, Logger: logger, ES: es, ESIndex: esIndex}
}

type AddProductInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

// Add creates a product with the next sequential numeric id.
func (s *ProductService) Add(ctx context.Context, in AddProductInput) (*entity.Product, error) {
	num, err := s.Repo.NextNum(ctx)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Num:       num,
		Name:      in.Name,
		Image:     in.Image,
		Category:  in.Category,
		NewPrice:  in.NewPrice,
		OldPrice:  in.OldPrice,
		Available: true,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.index(ctx, p)
	return p, nil
}

// Remove deletes a product by its numeric id.
func (s *ProductService) Remove(ctx context.Context, num int) (*entity.Product, error) {
	p, err := s.Repo.DeleteByNum(ctx, num)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.deleteFromIndex(ctx, num)
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

// NewCollections returns the 8 most recently added products.
func (s *ProductService) NewCollections(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.Latest(ctx, 8)
}

// PopularInWomen returns the first 4 products in the "women" category.
func (s *ProductService) PopularInWomen(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.ListByCategory(ctx, "women", 4)
}

func (s *ProductService) index(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":        p.Num,
		"name":      p.Name,
		"category":  p.Category,
		"image":     p.Image,
		"new_price": p.NewPrice,
		"old_price": p.OldPrice,
		"date":      p.Date.Format(time.RFC3339Nano),
		"available": p.Available,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: strconv.Itoa(p.Num), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product", p.Num).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product", p.Num).Warn("es index response error")
	}
}

func (s *ProductService) deleteFromIndex(ctx context.Context, num int) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.Itoa(num)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product", num).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query on product name and category.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
