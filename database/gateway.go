package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// rollbackTimeout bounds the cleanup of a failed batch, which outlives the request context.
const rollbackTimeout = 10 * time.Second

var (
	ErrNotConfigured = errors.New("database not configured")
	ErrInvalidID     = errors.New("invalid id")
	ErrNotFound      = errors.New("not found")
)

// Gateway is a collection-agnostic insert/fetch helper over one database.
// A Gateway built from a nil database answers every call with ErrNotConfigured.
type Gateway struct {
	db *mongo.Database
}

func NewGateway(db *mongo.Database) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Configured() bool {
	return g != nil && g.db != nil
}

func (g *Gateway) collection(kind string) (*mongo.Collection, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}
	return g.db.Collection(kind), nil
}

// Create inserts one record and returns its generated id as hex.
func (g *Gateway) Create(ctx context.Context, kind string, doc any) (string, error) {
	col, err := g.collection(kind)
	if err != nil {
		return "", err
	}
	d, id, err := withID(doc)
	if err != nil {
		return "", err
	}
	if _, err := col.InsertOne(ctx, d); err != nil {
		return "", fmt.Errorf("insert %s: %w", kind, err)
	}
	return id.Hex(), nil
}

// CreateMany inserts a batch and returns the ids in input order. The batch is
// all-or-nothing: when the insert fails, records written so far are removed
// again before the error is returned.
func (g *Gateway) CreateMany(ctx context.Context, kind string, docs []any) ([]string, error) {
	col, err := g.collection(kind)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []string{}, nil
	}

	batch := make([]bson.D, 0, len(docs))
	oids := make(bson.A, 0, len(docs))
	ids := make([]string, 0, len(docs))
	for i, doc := range docs {
		d, id, err := withID(doc)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		batch = append(batch, d)
		oids = append(oids, id)
		ids = append(ids, id.Hex())
	}

	if _, err := col.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true)); err != nil {
		if delErr := rollback(ctx, col, oids); delErr != nil {
			return nil, fmt.Errorf("insert %s batch: %w (rollback failed: %v)", kind, err, delErr)
		}
		return nil, fmt.Errorf("insert %s batch: %w", kind, err)
	}
	return ids, nil
}

// rollback removes the given ids even when ctx is already cancelled or past
// its deadline.
func rollback(ctx context.Context, col *mongo.Collection, oids bson.A) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()
	_, err := col.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	return err
}

// FindByID decodes the record with the given hex id into out.
func (g *Gateway) FindByID(ctx context.Context, kind, id string, out any) error {
	col, err := g.collection(kind)
	if err != nil {
		return err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("find %s: %w", kind, err)
	}
	return nil
}

// FindPage decodes at most limit records matching filter, after skipping skip,
// into out (a pointer to a slice). A nil sort keeps natural order.
func (g *Gateway) FindPage(ctx context.Context, kind string, filter, sort any, skip, limit int64, out any) error {
	col, err := g.collection(kind)
	if err != nil {
		return err
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", kind, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	return nil
}

func (g *Gateway) Count(ctx context.Context, kind string, filter any) (int64, error) {
	col, err := g.collection(kind)
	if err != nil {
		return 0, err
	}
	n, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return n, nil
}

func (g *Gateway) Aggregate(ctx context.Context, kind string, pipeline any, out any) error {
	col, err := g.collection(kind)
	if err != nil {
		return err
	}
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", kind, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s aggregation: %w", kind, err)
	}
	return nil
}

// withID marshals doc into a bson.D led by a freshly generated _id. Any _id
// already present in doc is dropped.
func withID(doc any) (bson.D, bson.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, bson.ObjectID{}, fmt.Errorf("marshal record: %w", err)
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, bson.ObjectID{}, fmt.Errorf("unmarshal record: %w", err)
	}

	id := bson.NewObjectID()
	out := make(bson.D, 0, len(fields)+1)
	out = append(out, bson.E{Key: "_id", Value: id})
	for _, f := range fields {
		if f.Key == "_id" {
			continue
		}
		out = append(out, f)
	}
	return out, id, nil
}
