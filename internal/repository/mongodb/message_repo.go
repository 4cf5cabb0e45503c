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

const messageCollection = "mensajes"

// MessageRepo implements the conversation store: append and list only.
type MessageRepo struct {
	coll *mongo.Collection
	conv converter.MessageConverter
}

func NewMessageRepo(db *mongo.Database, conv converter.MessageConverter) *MessageRepo {
	return &MessageRepo{
		coll: db.Collection(messageCollection),
		conv: conv,
	}
}

func (m *MessageRepo) ListAll(ctx context.Context) ([]domain.Message, error) {
	cursor, err := m.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.MessageModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return m.conv.ToEntities(models), nil
}

func (m *MessageRepo) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	model := m.conv.ToModel(message)

	res, err := m.coll.InsertOne(ctx, model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}
	model.ID = oid

	return m.conv.ToEntity(model), nil
}
