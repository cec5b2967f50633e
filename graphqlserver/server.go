package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"quickview.GO/core/app"
	"quickview.GO/graphql"
	"quickview.GO/graphql/registry"
	_ "quickview.GO/graphql/resolvers"
)

// NewSchema parses the base schema plus registered extensions against the
// quick view resolver built from c.
func NewSchema(c *app.Container) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), registry.GetQueryResolver(c), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
