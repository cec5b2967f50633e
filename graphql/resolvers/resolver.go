package resolvers

import (
	"context"
	"encoding/json"
	"fmt"

	"quickview.GO/core/app"
	gqlregistry "quickview.GO/graphql/registry"
	"quickview.GO/service/quickview"
)

func init() {
	gqlregistry.RegisterQueryResolverFactory(func(c *app.Container) interface{} {
		return NewQueryResolver(c.Service, c.ViewOptions())
	})
}

// QueryResolver is the single resolver for all Query and Mutation fields.
// Methods live in quickview.go.
// New Query fields: use RegisterSchemaExtension + add method on QueryResolver,
// or use _extension for fully dynamic resolvers.
type QueryResolver struct {
	svc  *quickview.Service
	view quickview.ViewOptions
}

func NewQueryResolver(svc *quickview.Service, view quickview.ViewOptions) *QueryResolver {
	return &QueryResolver{svc: svc, view: view}
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, fmt.Errorf("_extension %s: args must be a JSON object: %w", args.Name, err)
		}
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, _ := json.Marshal(out)
	s := string(b)
	return &s, nil
}
