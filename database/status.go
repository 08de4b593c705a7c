package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const maxListedCollections = 10

// Status is the reachability report served by the diagnostics endpoint.
type Status struct {
	Configured  bool
	Connected   bool
	Name        string
	Collections []string
	Err         error
}

func (g *Gateway) Status(ctx context.Context) Status {
	if !g.Configured() {
		return Status{Collections: []string{}}
	}
	st := Status{Configured: true, Name: g.db.Name(), Collections: []string{}}
	names, err := g.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		st.Err = fmt.Errorf("list collections: %w", err)
		return st
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	st.Connected = true
	st.Collections = names
	return st
}
