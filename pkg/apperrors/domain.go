package apperrors

import "net/http"

var (
	ErrPropertyNotFound     = NewNotFoundError("property", "Property not found")
	ErrInspectionNotFound   = NewNotFoundError("inspection", "Inspection not found")
	ErrConsultationNotFound = NewNotFoundError("consultation", "Consultation not found")
	ErrMailingListNotFound  = NewNotFoundError("mailing", "Mailing list not found")

	ErrNoMatchingRecipients = New(CodeNoRecipients, "mailing", "No matching recipients found", http.StatusBadRequest)

	ErrMissingToken        = NewUnauthorizedError("Unauthorized")
	ErrInvalidToken        = New(CodeInvalidToken, "auth", "Unauthorized", http.StatusUnauthorized)
	ErrAdminAccessDenied   = NewForbiddenError("Admin access required")
	ErrIdentityUnavailable = New(CodeExternalServiceError, "auth", "Identity provider unavailable", http.StatusInternalServerError)
)
