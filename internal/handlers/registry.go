package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	ContactHandler      *ContactHandler
	PropertyHandler     *PropertyHandler
	BookingHandler      *BookingHandler
	RequestHandler      *RequestHandler
	MessageHandler      *MessageHandler
	NotificationHandler *NotificationHandler
	MailingHandler      *MailingHandler
	ProfileHandler      *ProfileHandler
	UserHandler         *UserHandler
	ExportHandler       *ExportHandler
}
