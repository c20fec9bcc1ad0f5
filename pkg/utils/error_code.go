package utils

// Authentication errors
const (
	ErrAuthenticationKeyNotFound = "authentication_key_not_found"
	ErrUnauthorized              = "unauthorized"
	ErrTokenExpired              = "token_expired"
	ErrCredentialIDNotFound      = "credential_id_not_found"
	ErrBrokenCredential          = "credential_missing_profile_link"
)

// Request errors
const (
	ErrBadRequest = "bad_request"
)

// Credential errors
const (
	ErrEmailAlreadyUsed = "email_already_used"
	ErrInvalidEmail     = "invalid_email_or_password"
)

// Course / lecture errors
const (
	ErrCourseNotExist  = "course_not_exist"
	ErrLectureNotExist = "lecture_not_exist"
	ErrImageRequired   = "image_required"
	ErrImageTooLarge   = "image_too_large"
	ErrOpeningImage    = "opening_image_failed"
	ErrReadingImage    = "reading_image_failed"
	ErrResizeImage     = "resize_image_failed"
	ErrUploadFailed    = "upload_failed"
	ErrProvisionZoom   = "provision_meeting_link_failed"
)

// Database errors
const (
	ErrSaveData = "error_save_data"
	ErrGetData  = "error_get_data"
)

// Internal errors
const (
	ErrHashData      = "hash_data_failed"
	ErrGenerateToken = "generate_token_failed"
)
