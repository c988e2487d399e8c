package internal

import (
	"context"
	"errors"
	"fmt"
	"ocppcore/internal/config"
	"ocppcore/types"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionLocalAuthLists = "local_auth_lists"

type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
	logger        *zap.Logger
}

type localAuthListDocument struct {
	ChargePointId string                    `bson:"_id"`
	Version       int                       `bson:"version"`
	Entries       []types.AuthorizationData `bson:"entries"`
	Updated       time.Time                 `bson:"updated"`
}

// NewMongoClient returns nil when mongo is disabled in the configuration.
func NewMongoClient(conf *config.Config, logger *zap.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
		logger:        logger,
	}
	return client, nil
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	err := connection.Disconnect(m.ctx)
	if err != nil {
		m.logger.Error("mongodb disconnect", zap.Error(err))
	}
}

// SaveLocalList stores the authorization list of a charge point, replacing the previous one.
func (m *MongoDB) SaveLocalList(chargePointId string, version int, entries []types.AuthorizationData) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	document := localAuthListDocument{
		ChargePointId: chargePointId,
		Version:       version,
		Entries:       entries,
		Updated:       time.Now().UTC(),
	}
	filter := bson.D{{Key: "_id", Value: chargePointId}}
	collection := connection.Database(m.database).Collection(collectionLocalAuthLists)
	_, err = collection.ReplaceOne(m.ctx, filter, document, options.Replace().SetUpsert(true))
	return err
}

// LoadLocalList returns version 0 and no entries when nothing was saved yet.
func (m *MongoDB) LoadLocalList(chargePointId string) (int, []types.AuthorizationData, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, nil, err
	}
	defer m.disconnect(connection)

	var document localAuthListDocument
	filter := bson.D{{Key: "_id", Value: chargePointId}}
	collection := connection.Database(m.database).Collection(collectionLocalAuthLists)
	err = collection.FindOne(m.ctx, filter).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	return document.Version, document.Entries, nil
}
