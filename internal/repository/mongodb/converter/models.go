package converter

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductModel is the bson document of the productos collection.
type ProductModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Price     float64            `bson:"price"`
	Thumbnail string             `bson:"thumbnail"`
}

// AuthorModel is the author sub-document embedded in every mensaje.
type AuthorModel struct {
	ID        string `bson:"id"`
	FirstName string `bson:"nombre"`
	LastName  string `bson:"apellido"`
	Age       int    `bson:"edad"`
	Alias     string `bson:"alias"`
	Avatar    string `bson:"avatar"`
}

// MessageModel is the bson document of the mensajes collection.
type MessageModel struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Author AuthorModel        `bson:"author"`
	Date   string             `bson:"date"`
	Text   string             `bson:"text"`
}
