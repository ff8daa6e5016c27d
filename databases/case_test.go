package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/databases"
	"github.com/bearcourt/bear-court-api/databases/mocks"
	"github.com/bearcourt/bear-court-api/models"
)

func TestNewCaseDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	caseDB := databases.NewCaseDatabase(db)

	assert.NotEmpty(t, caseDB)
}

func TestCaseDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Case)
		(*arg).ID = "MOCKED"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "cases").Return(collectionHelper)

	// Create new database with mocked Database interface
	caseDba := databases.NewCaseDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	courtCase, err := caseDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, courtCase)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with different filter for the correct
	// result
	courtCase, err = caseDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.Case{ID: "MOCKED"}, courtCase)
	assert.NoError(t, err)
}

func TestCaseDatabase_UpdateOne(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var urHelper databases.UpdateResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	urHelper = &mocks.UpdateResultHelper{}

	urHelper.(*mocks.UpdateResultHelper).On("MatchedCount").Return(int64(1))

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(), bson.M{"_id": "AAAAAA"}, mock.Anything).
		Return(urHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "cases").Return(collectionHelper)

	caseDba := databases.NewCaseDatabase(dbHelper)

	res, err := caseDba.UpdateOne(context.Background(), bson.M{"_id": "AAAAAA"},
		bson.M{"$set": bson.M{"status": models.CaseStatusFinished}})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount())
}
