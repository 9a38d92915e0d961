package models

// Key prefixes. A record keeps its prefix for life.
const (
	PrefixContactInquiry    = "inquiry_"
	PrefixProperty          = "property_"
	PrefixPropertyInquiry   = "prop_inquiry_"
	PrefixReservation       = "reservation_"
	PrefixInspection        = "inspection_"
	PrefixConsultation      = "consultation_"
	PrefixRequest           = "request_"
	PrefixMessage           = "message_"
	PrefixAdminNotification = "admin_notification_"
	PrefixUserNotification  = "notification_"
	PrefixMailingList       = "mailing_list_"
	PrefixProfile           = "profile_"
)

// UserNotificationPrefix scopes notifications to one user.
func UserNotificationPrefix(userID string) string {
	return PrefixUserNotification + userID + "_"
}

// MessageThreadPrefix scopes messages to one user's thread.
func MessageThreadPrefix(userID string) string {
	return PrefixMessage + userID + "_"
}

func ProfileKey(userID string) string {
	return PrefixProfile + userID
}
