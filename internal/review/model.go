// File: internal/review/model.go
package review

// Review is a student-authored rating of a university, referenced by uniId.
// The reference is weak: deleting a university (which never happens) would
// not cascade here. JSON tags match the persisted and seed-file shape.
type Review struct {
	ID           string        `json:"id"`
	UniID        string        `json:"uniId"`
	Author       string        `json:"author"`
	UserID       string        `json:"userId,omitempty"`
	Rating       int           `json:"rating" validate:"gte=1,lte=5"`
	Comment      string        `json:"comment" validate:"required"`
	Date         string        `json:"date"`
	HelpfulCount int           `json:"helpfulCount"`
	Verified     bool          `json:"verified,omitempty"`
	Replies      []ReviewReply `json:"replies,omitempty"`
}

// ReviewReply is a threaded answer appended to a review. IsUniversityReply is
// true iff the replying session belongs to a university representative.
type ReviewReply struct {
	ID                string `json:"id"`
	ReviewID          string `json:"reviewId"`
	Author            string `json:"author"`
	Comment           string `json:"comment"`
	Date              string `json:"date"`
	IsUniversityReply bool   `json:"isUniversityReply"`
}
