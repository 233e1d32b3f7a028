package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/domain/product"
)

type catalogEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// readCatalogFile reads a JSON array of products, gunzipping files ending
// in .gz.
func readCatalogFile(path string) ([]product.CreateRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip reader")
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return readCatalog(r)
}

func readCatalog(r io.Reader) ([]product.CreateRequest, error) {
	var entries []catalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "parse catalog JSON")
	}
	out := make([]product.CreateRequest, len(entries))
	for i, e := range entries {
		out[i] = product.CreateRequest{
			Name:        e.Name,
			Description: e.Description,
			Category:    e.Category,
			Price:       e.Price,
			Stock:       e.Stock,
		}
	}
	return out, nil
}

// generateProducts returns n fake products whose names differ from each
// other and from taken. Names are screened with a bloom filter; a false
// positive only costs a numeric suffix.
func generateProducts(seed uint64, n int, taken []string) []product.CreateRequest {
	faker := gofakeit.New(seed)
	filter := bloom.NewWithEstimates(uint(max(n+len(taken), 1)), 0.001)
	for _, name := range taken {
		filter.AddString(name)
	}

	out := make([]product.CreateRequest, 0, n)
	for len(out) < n {
		name := faker.ProductName()
		for i := 2; filter.TestOrAddString(name); i++ {
			name = fmt.Sprintf("%s %d", faker.ProductName(), i)
		}
		out = append(out, product.CreateRequest{
			Name:        name,
			Description: faker.ProductDescription(),
			Category:    faker.ProductCategory(),
			Price:       decimal.NewFromFloat(faker.Price(1, 100)).Round(2),
			Stock:       faker.IntRange(0, 100),
		})
	}
	return out
}
