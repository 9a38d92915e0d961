package repositories

import (
	"letify_backend/internal/kvstore"
	"letify_backend/internal/models"
)

// Container holds one repository per record family, all over the same store.
type Container struct {
	Contacts          *Repository[models.ContactInquiry]
	Properties        *Repository[models.Property]
	PropertyInquiries *Repository[models.PropertyInquiry]
	Reservations      *Repository[models.Reservation]
	Inspections       *Repository[models.InspectionBooking]
	Consultations     *Repository[models.ConsultationRequest]
	Requests          *Repository[models.ServiceRequest]
	Messages          *Repository[models.Message]
	MailingLists      *Repository[models.MailingList]
	Profiles          *Repository[models.Profile]
	Notifications     *NotificationRepository
}

func NewContainer(store kvstore.Store) *Container {
	return &Container{
		Contacts:          NewRepository[models.ContactInquiry](store, models.PrefixContactInquiry),
		Properties:        NewRepository[models.Property](store, models.PrefixProperty),
		PropertyInquiries: NewRepository[models.PropertyInquiry](store, models.PrefixPropertyInquiry),
		Reservations:      NewRepository[models.Reservation](store, models.PrefixReservation),
		Inspections:       NewRepository[models.InspectionBooking](store, models.PrefixInspection),
		Consultations:     NewRepository[models.ConsultationRequest](store, models.PrefixConsultation),
		Requests:          NewRepository[models.ServiceRequest](store, models.PrefixRequest),
		Messages:          NewRepository[models.Message](store, models.PrefixMessage),
		MailingLists:      NewRepository[models.MailingList](store, models.PrefixMailingList),
		Profiles:          NewRepository[models.Profile](store, models.PrefixProfile),
		Notifications:     NewNotificationRepository(store),
	}
}
