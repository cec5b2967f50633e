package catalog

import (
	"context"
	"fmt"
	"io"
	"time"

	catalogRepo "quickview.GO/model/repository/catalog"
)

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	Total     int
	Imported  int
	Skipped   int
	Handles   []string
	Warnings  []string
	TotalTime time.Duration
}

// Import reads storefront product documents from r and saves them. The input
// is either a JSON array of documents or an object with a "products" array.
// Documents that fail to decode or validate are skipped with a warning.
func Import(ctx context.Context, repo *catalogRepo.ProductRepository, r io.Reader) (*ImportResult, error) {
	start := time.Now()
	doc, err := readDocument(r)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var docs []interface{}
	switch v := doc.(type) {
	case []interface{}:
		docs = v
	case map[string]interface{}:
		list, ok := v["products"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("import file: expected an array or a \"products\" array")
		}
		docs = list
	default:
		return nil, fmt.Errorf("import file: expected an array or a \"products\" array")
	}

	res := &ImportResult{Total: len(docs)}
	for i, d := range docs {
		p, err := DecodeProduct(d)
		if err == nil && p.Handle == "" {
			err = fmt.Errorf("handle is required")
		}
		if err == nil {
			err = p.Validate()
		}
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("product #%d %s: %v", i+1, p.Handle, err))
			continue
		}
		if err := repo.Save(ctx, ToEntity(p)); err != nil {
			return res, fmt.Errorf("save %s: %w", p.Handle, err)
		}
		res.Imported++
		res.Handles = append(res.Handles, p.Handle)
	}
	res.TotalTime = time.Since(start)
	return res, nil
}
