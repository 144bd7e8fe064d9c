// File: internal/university/model.go
package university

// Degree values a program may carry.
const (
	DegreeBSc  = "BSc"
	DegreeBA   = "BA"
	DegreeLLB  = "LLB"
	DegreeBEng = "BEng"
	DegreeMSc  = "MSc"
	DegreeMA   = "MA"
	DegreePhD  = "PhD"
)

// Program is owned exclusively by its University.
type Program struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Degree        string `json:"degree" validate:"required,oneof=BSc BA LLB BEng MSc MA PhD"`
	DurationYears int    `json:"durationYears" validate:"gte=1"`
	Language      string `json:"language"`
}

// Campus is one physical site of a University.
type Campus struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Description    string   `json:"description,omitempty"`
	ProfilePicture *string  `json:"profilePicture,omitempty"`
	Images         []string `json:"images,omitempty"`
}

// Faculty groups programs under a named school.
type Faculty struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Programs    []string `json:"programs,omitempty"`
}

// Housing describes student housing availability.
type Housing struct {
	Available   bool   `json:"available"`
	Description string `json:"description,omitempty"`
}

// ContactInfo holds the public contact surface of a University.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// SocialMedia holds the University's social links.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// University is a catalog or representative-authored institution record.
// The id equals the owning representative's user id when authored in-app, or
// a static id when seeded from the catalog; the two id spaces are not
// expected to overlap. JSON tags match the persisted and catalog shape.
type University struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name" validate:"required"`
	City                  string       `json:"city" validate:"required"`
	Country               string       `json:"country,omitempty"`
	Rating                float64      `json:"rating" validate:"gte=0,lte=5"`
	Programs              []Program    `json:"programs" validate:"dive"`
	ProfilePicture        *string      `json:"profilePicture,omitempty"`
	Images                []string     `json:"images"`
	Description           string       `json:"description"`
	Verified              bool         `json:"verified,omitempty"`
	AboutCity             string       `json:"aboutCity,omitempty"`
	Campuses              []Campus     `json:"campuses,omitempty" validate:"dive"`
	Faculties             []Faculty    `json:"faculties,omitempty" validate:"dive"`
	AdmissionRequirements string       `json:"admissionRequirements,omitempty"`
	ApplicationDeadline   string       `json:"applicationDeadline,omitempty"`
	StudentBodySize       int          `json:"studentBodySize,omitempty"`
	CampusFacilities      []string     `json:"campusFacilities,omitempty"`
	Housing               *Housing     `json:"housing,omitempty"`
	ContactInfo           *ContactInfo `json:"contactInfo,omitempty"`
	SocialMedia           *SocialMedia `json:"socialMedia,omitempty"`
	Accreditation         []string     `json:"accreditation,omitempty"`
	History               string       `json:"history,omitempty"`
	Mission               string       `json:"mission,omitempty"`
	Vision                string       `json:"vision,omitempty"`
}

// Stats summarizes an aggregated list for the catalog overview.
type Stats struct {
	Total         int     `json:"total"`
	Cities        int     `json:"cities"`
	Programs      int     `json:"programs"`
	AverageRating float64 `json:"averageRating"`
}
