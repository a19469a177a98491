package handlers

import (
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// GraphQL mounts the relay-style handler: POST with a JSON body of
// {query, operationName, variables}, answered with a {data, errors} envelope.
func GraphQL(schema *graphql.Schema) gin.HandlerFunc {
	h := &relay.Handler{Schema: schema}

	return gin.WrapH(h)
}
