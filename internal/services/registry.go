package services

import (
	"letify_backend/internal/auth"
	"letify_backend/internal/repositories"
)

// ServiceContainer is everything the handlers need.
type ServiceContainer struct {
	ContactService      *ContactService
	PropertyService     *PropertyService
	InquiryService      *InquiryService
	BookingService      *BookingService
	RequestService      *RequestService
	MessageService      *MessageService
	NotificationService *NotificationService
	MailingService      *MailingService
	ProfileService      *ProfileService
	UserService         *UserService
	ExportService       *ExportService
}

func NewServiceContainer(repos *repositories.Container, notifier *Notifier, directory auth.Directory) *ServiceContainer {
	return &ServiceContainer{
		ContactService:      NewContactService(repos.Contacts, notifier),
		PropertyService:     NewPropertyService(repos.Properties),
		InquiryService:      NewInquiryService(repos.PropertyInquiries, repos.Properties, notifier),
		BookingService:      NewBookingService(repos, notifier),
		RequestService:      NewRequestService(repos.Requests, notifier),
		MessageService:      NewMessageService(repos.Messages, repos.Profiles, notifier),
		NotificationService: NewNotificationService(repos.Notifications),
		MailingService:      NewMailingService(repos.MailingLists, repos.Profiles, notifier),
		ProfileService:      NewProfileService(repos.Profiles),
		UserService:         NewUserService(directory),
		ExportService:       NewExportService(repos),
	}
}
