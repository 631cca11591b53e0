package store

import (
	"context"
	"errors"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentID is the _id of the single Mongo document holding the directory.
const documentID = "employees"

type mongoDocument struct {
	ID        string              `bson:"_id"`
	Employees []employee.Employee `bson:"employees"`
}

// MongoStore keeps the whole Document as one Mongo document, so every save is
// a single atomic ReplaceOne.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (m *MongoStore) Load(ctx context.Context) (employee.Document, error) {
	var md mongoDocument
	err := m.col.FindOne(ctx, bson.M{"_id": documentID}).Decode(&md)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Document{Employees: []employee.Employee{}}, nil
		}
		return employee.Document{}, unavailable("mongo find", err)
	}
	doc := employee.Document{Employees: md.Employees}
	if doc.Employees == nil {
		doc.Employees = []employee.Employee{}
	}
	if err := doc.Validate(); err != nil {
		return employee.Document{}, unavailable("mongo load", err)
	}
	return doc, nil
}

func (m *MongoStore) Save(ctx context.Context, doc employee.Document) error {
	md := mongoDocument{ID: documentID, Employees: doc.Employees}
	if md.Employees == nil {
		md.Employees = []employee.Employee{}
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": documentID}, md, opts); err != nil {
		return unavailable("mongo replace", err)
	}
	return nil
}

// InitializeIfAbsent relies on $setOnInsert so concurrent starters cannot
// overwrite an existing directory.
func (m *MongoStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	employees := seed.Employees
	if employees == nil {
		employees = []employee.Employee{}
	}
	update := bson.M{"$setOnInsert": bson.M{"employees": employees}}
	opts := options.Update().SetUpsert(true)
	if _, err := m.col.UpdateOne(ctx, bson.M{"_id": documentID}, update, opts); err != nil {
		return unavailable("mongo seed", err)
	}
	return nil
}
