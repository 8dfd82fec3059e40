package echo

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userListRequest struct {
	Username string `json:"username"`
}

type productUpdateRequest struct {
	ID          string         `json:"id"`
	Brand       string         `json:"brand" validate:"required"`
	Name        string         `json:"name"`
	Category    string         `json:"category" validate:"required"`
	CarMake     string         `json:"carMake" validate:"required"`
	Description string         `json:"description" validate:"required"`
	PartNumber  string         `json:"partNumber"`
	Position    string         `json:"position"`
	Price       float64        `json:"price"`
	PictureCode string         `json:"pictureCode"`
	Infos       map[string]any `json:"infos"`
	IsFeatured  bool           `json:"isFeatured"`
	IsPopular   bool           `json:"isPopular"`
	IsView      bool           `json:"isView"`
}

type productSearchRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	CarMake  string `json:"carMake"`
	Sort     string `json:"sort"`
	OrderBy  string `json:"orderBy"`
}

type incidentUpdateRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=feature bug technical"`
	Comment     string `json:"comment"`
	AssignedTo  string `json:"assignedTo" validate:"required"`
}

type incidentListRequest struct {
	Search  string `json:"search"`
	Type    string `json:"type" validate:"omitempty,oneof=feature bug technical"`
	Sort    string `json:"sort"`
	OrderBy string `json:"orderBy"`
}

type incidentViewRequest struct {
	ID       string `json:"id" validate:"required"`
	IsViewed bool   `json:"isViewed"`
}

type incidentResolveRequest struct {
	ID         string `json:"id" validate:"required"`
	Comment    string `json:"comment"`
	IsResolved bool   `json:"isResolved"`
}

type removeRequest struct {
	ID string `json:"id" validate:"required"`
}
