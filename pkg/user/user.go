package user

// Role distinguishes the sheikh from the students. It is an explicit
// attribute set when the user is created, never inferred elsewhere.
type Role string

const (
	RoleSheikh  Role = "sheikh"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleSheikh || r == RoleStudent
}

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Role        Role
	Settings    Settings
}

type Settings struct {
	Timezone string
}
