package mongodb

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const productCollection = "productos"

// ProductRepo implements the catalog store over a Mongo collection.
type ProductRepo struct {
	coll *mongo.Collection
	conv converter.ProductConverter
}

func NewProductRepo(db *mongo.Database, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		coll: db.Collection(productCollection),
		conv: conv,
	}
}

func (p *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := p.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntities(models), nil
}

// ListByID returns the matching product as a slice. A malformed hex id is
// indistinguishable from a missing one at this boundary: both come back as an
// empty slice and the REST layer collapses them into a single 404.
func (p *ProductRepo) ListByID(ctx context.Context, id string) ([]domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return []domain.Product{}, nil
	}

	cursor, err := p.coll.Find(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntities(models), nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	res, err := p.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}
	model.ID = oid

	return p.conv.ToEntity(model), nil
}

// Update replaces the product's fields and returns its prior state. The
// find-then-update pair is not transactional; a concurrent writer may slip
// between the two, which the store accepts.
func (p *ProductRepo) Update(ctx context.Context, id string, product *domain.Product) ([]domain.Product, error) {
	prior, err := p.ListByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(prior) == 0 {
		return prior, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return []domain.Product{}, nil
	}

	update := bson.M{"$set": bson.M{
		"title":     product.Title,
		"price":     product.Price,
		"thumbnail": product.Thumbnail,
	}}

	if _, err := p.coll.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return prior, nil
}

// Delete removes the product and returns its prior state.
func (p *ProductRepo) Delete(ctx context.Context, id string) ([]domain.Product, error) {
	prior, err := p.ListByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(prior) == 0 {
		return prior, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return []domain.Product{}, nil
	}

	if _, err := p.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return prior, nil
}
