package domain

// Machine-readable outcome codes carried in the response envelope's
// "system" field. Clients switch on these, never on HTTP status.
const (
	CodeSuccess          = "success"
	CodeFailed           = "failed"
	CodeDeniedPermission = "denied.permission"
	CodeInvalidPage      = "invalid.page"
	CodeInvalidRequest   = "invalid.request"
	CodeInvalidSession   = "invalid.session"
	CodeInvalidToken     = "invalid.token"
	CodeNoRecord         = "no.record"
	CodeNotFound         = "not.found"
	CodeErrorServer      = "error.server"
)

// User codes.
const (
	CodeInvalidUser       = "invalid.user"
	CodeInvalidPermission = "invalid.permission"
	CodeEmptyUsername     = "empty.username"
	CodeEmptyPassword     = "empty.password"
)

// Catalog and ticket field codes.
const (
	CodeEmptyBrand       = "empty.brand"
	CodeEmptyCategory    = "empty.category"
	CodeEmptyCarMake     = "empty.car.make"
	CodeEmptyDescription = "empty.description"
	CodeEmptyID          = "empty.id"
	CodeEmptyOrder       = "empty.orderBy"
	CodeEmptySort        = "empty.sort"
	CodeEmptyTitle       = "empty.title"
	CodeEmptyType        = "empty.type"
	CodeEmptyAssignedTo  = "empty.assigned.to"
	CodeExistTitle       = "exist.title"
	CodeInvalidType      = "invalid.type"
	CodeSizeExceeded     = "size.exceeded"
)
