package domain

// Role distinguishes the two account types. Managers are the
// service-providing stylists; clients book against their calendars.
type Role string

const (
	RoleClient  Role = "client"
	RoleManager Role = "manager"
)

// User is the identity the authentication collaborator vouches for.
// Identity and credentials are owned elsewhere; only the fields the
// scheduling core reads are modeled here.
type User struct {
	ID       int64
	Username string
	Role     Role
	Active   bool
}
