package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/controllers"
	"go-storefront/models"
	"go-storefront/repository/mocks"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupContactTest() (*mocks.ContactRepository, *controllers.ContactController) {
	contacts := new(mocks.ContactRepository)

	return contacts, controllers.NewContactController(contacts, utils.NewEmailService())
}

func TestCreateContact(t *testing.T) {
	t.Run("saves the inquiry with a default subject", func(t *testing.T) {
		contacts, cc := setupContactTest()

		contacts.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Contact) bool {
			return c.Subject == "General Inquiry" && c.Email == "bib@example.com"
		})).Return(&models.Contact{ID: primitive.NewObjectID(), Subject: "General Inquiry"}, nil).Once()

		rec := httptest.NewRecorder()
		cc.CreateContact(rec, jsonRequest("POST", "/api/contact", map[string]string{
			"firstName": "Bibek",
			"lastName":  "KC",
			"email":     "bib@example.com",
			"message":   "Do you ship abroad?",
		}))

		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Contact message sent successfully", body["message"])

		contacts.AssertExpectations(t)
	})

	t.Run("rejects a submission without a message", func(t *testing.T) {
		contacts, cc := setupContactTest()

		rec := httptest.NewRecorder()
		cc.CreateContact(rec, jsonRequest("POST", "/api/contact", map[string]string{
			"firstName": "Bibek",
			"lastName":  "KC",
			"email":     "bib@example.com",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMarkContactRead(t *testing.T) {
	contacts, cc := setupContactTest()

	id := primitive.NewObjectID()
	contacts.On("Update", mock.Anything, id, bson.M{"isRead": true}).
		Return(&models.Contact{ID: id, IsRead: true}, nil).Once()

	req := httptest.NewRequest("PUT", "/api/contact/"+id.Hex()+"/read", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()

	cc.MarkContactRead(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	contacts.AssertExpectations(t)
}
