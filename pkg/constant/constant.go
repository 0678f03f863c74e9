package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "quickcourt-backend"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusExpired   = "expired"

	BookingCanceledByUser   = "user"
	BookingCanceledByOwner  = "owner"
	BookingCanceledBySystem = "system"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"

	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

const (
	CourtStatusActive      = "active"
	CourtStatusMaintenance = "maintenance"
	CourtStatusInactive    = "inactive"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MicrosecondsPerSec = 1000000

	// MinorUnitFactor converts major currency units (rupees) to the minor
	// units (paise) the payment provider expects.
	MinorUnitFactor = 100
)

const (
	UserRoleAdmin  = "admin"
	UserRoleOwner  = "owner"
	UserRolePlayer = "player"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldRole  = "role"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeJPG  = "image/jpg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWEBP = "image/webp"
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
