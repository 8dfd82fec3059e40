package mongodb

const (
	UsersCollection     = "users"
	SessionsCollection  = "sessions"
	ProductsCollection  = "products"
	IncidentsCollection = "incidents"
)
