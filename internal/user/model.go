// File: internal/user/model.go
package user

// Role defines what a signed-in account is allowed to do. University
// representatives own exactly one university record and may answer reviews.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleStudent    Role = "student"
	RoleUniversity Role = "university"
)

// User is the session-facing account record. JSON tags match the persisted
// shape of the user directory.
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Name              string   `json:"name"`
	Role              Role     `json:"role"`
	UniversityID      *string  `json:"universityId,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	ProfilePicture    *string  `json:"profilePicture,omitempty"`
	GPA               *float64 `json:"gpa,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Address           string   `json:"address,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	DateOfBirth       string   `json:"dateOfBirth,omitempty"`
	CurrentUniversity string   `json:"currentUniversity,omitempty"`
	GraduationYear    int      `json:"graduationYear,omitempty"`
	Major             string   `json:"major,omitempty"`
	Interests         []string `json:"interests,omitempty"`
}

// CredentialedUser is the directory entry: a User plus the clear-text
// password. It exists only inside the directory; every record handed out by
// the service goes through Sanitize first.
type CredentialedUser struct {
	User
	Password string `json:"password"`
}

// Sanitize strips the password, producing the record a session may hold.
func (c CredentialedUser) Sanitize() User {
	return c.User
}

// SignupRequest carries the fields collected by the signup form.
type SignupRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	Role     Role   `validate:"required,oneof=guest student university"`
}

// Patch lists every profile field UpdateUser may change. Identity fields
// (id, email, role, createdAt) are deliberately absent; anything not listed
// here cannot be patched.
type Patch struct {
	Name              *string
	UniversityID      *string
	ProfilePicture    *string
	GPA               *float64
	Phone             *string
	Address           *string
	Bio               *string
	DateOfBirth       *string
	CurrentUniversity *string
	GraduationYear    *int
	Major             *string
	Interests         *[]string
}

func (p Patch) apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.UniversityID != nil {
		u.UniversityID = p.UniversityID
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
	if p.GPA != nil {
		u.GPA = p.GPA
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.CurrentUniversity != nil {
		u.CurrentUniversity = *p.CurrentUniversity
	}
	if p.GraduationYear != nil {
		u.GraduationYear = *p.GraduationYear
	}
	if p.Major != nil {
		u.Major = *p.Major
	}
	if p.Interests != nil {
		u.Interests = *p.Interests
	}
}
