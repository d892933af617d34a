package controllers

import (
	"log/slog"
	"net/http"

	apperrors "go-storefront/errors"
	"go-storefront/models"
	"go-storefront/repository"
	"go-storefront/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactController handles contact-form inquiries.
type ContactController struct {
	Contacts repository.ContactRepository
	Email    *utils.EmailService
	Validate *validator.Validate
}

func NewContactController(contacts repository.ContactRepository, email *utils.EmailService) *ContactController {
	return &ContactController{
		Contacts: contacts,
		Email:    email,
		Validate: validator.New(),
	}
}

// CreateContact accepts a public form submission and forwards it to
// the shop inbox.
func (cc *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if !decodeAndValidate(w, r, &req, cc.Validate) {
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	contact, err := cc.Contacts.Create(ctx, &models.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Subject:     subject,
		Message:     req.Message,
	})
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to save contact message").WithError(err))
		return
	}

	go func(contact *models.Contact) {
		if err := cc.Email.SendContactNotification(contact); err != nil {
			slog.Error("failed to forward contact inquiry", "contactId", contact.ID.Hex(), "error", err)
		}
	}(contact)

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "Contact message sent successfully",
		"contact": contact,
	})
}

func (cc *ContactController) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	contacts, err := cc.Contacts.FindAll(ctx)
	if err != nil {
		utils.WriteError(w, apperrors.Database("Failed to retrieve contacts").WithError(err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"count":    len(contacts),
		"contacts": contacts,
	})
}

func (cc *ContactController) GetContactByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid contact ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	contact, err := cc.Contacts.FindByID(ctx, id)
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Contact not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"contact": contact,
	})
}

// MarkContactRead flags an inquiry as handled.
func (cc *ContactController) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid contact ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	contact, err := cc.Contacts.Update(ctx, id, bson.M{"isRead": true})
	if err != nil {
		utils.WriteError(w, apperrors.NotFound("Contact not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"contact": contact,
	})
}

func (cc *ContactController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteError(w, apperrors.InvalidArgument("Invalid contact ID"))
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if err := cc.Contacts.Delete(ctx, id); err != nil {
		utils.WriteError(w, apperrors.NotFound("Contact not found"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Contact deleted successfully",
	})
}
