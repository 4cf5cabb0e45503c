// Package converter maps bson documents to domain entities and back.
// Document ids surface in the domain as their canonical hex string form.
package converter

import (
	"github.com/DRSN-tech/catalog-live/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToEntities(models []ProductModel) []domain.Product
	ToModel(product *domain.Product) *ProductModel
}

type MessageConverter interface {
	ToEntity(model *MessageModel) *domain.Message
	ToEntities(models []MessageModel) []domain.Message
	ToModel(message *domain.Message) *MessageModel
}

type ProductConverterImpl struct{}

func NewProductConverter() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID.Hex(),
		Title:     model.Title,
		Price:     model.Price,
		Thumbnail: model.Thumbnail,
	}
}

func (c *ProductConverterImpl) ToEntities(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

// ToModel leaves the ObjectID zero for unpersisted products; the store
// assigns it on insert.
func (c *ProductConverterImpl) ToModel(product *domain.Product) *ProductModel {
	model := &ProductModel{
		Title:     product.Title,
		Price:     product.Price,
		Thumbnail: product.Thumbnail,
	}

	if oid, err := primitive.ObjectIDFromHex(product.ID); err == nil {
		model.ID = oid
	}

	return model
}

type MessageConverterImpl struct{}

func NewMessageConverter() *MessageConverterImpl {
	return &MessageConverterImpl{}
}

func (c *MessageConverterImpl) ToEntity(model *MessageModel) *domain.Message {
	return &domain.Message{
		ID: model.ID.Hex(),
		Author: domain.Author{
			ID:        model.Author.ID,
			FirstName: model.Author.FirstName,
			LastName:  model.Author.LastName,
			Age:       model.Author.Age,
			Alias:     model.Author.Alias,
			Avatar:    model.Author.Avatar,
		},
		Date: model.Date,
		Text: model.Text,
	}
}

func (c *MessageConverterImpl) ToEntities(models []MessageModel) []domain.Message {
	entities := make([]domain.Message, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

func (c *MessageConverterImpl) ToModel(message *domain.Message) *MessageModel {
	model := &MessageModel{
		Author: AuthorModel{
			ID:        message.Author.ID,
			FirstName: message.Author.FirstName,
			LastName:  message.Author.LastName,
			Age:       message.Author.Age,
			Alias:     message.Author.Alias,
			Avatar:    message.Author.Avatar,
		},
		Date: message.Date,
		Text: message.Text,
	}

	if oid, err := primitive.ObjectIDFromHex(message.ID); err == nil {
		model.ID = oid
	}

	return model
}
