package request

// ByDateRequest is a common struct for endpoints keyed by a calendar date
// path parameter.
type ByDateRequest struct {
	Date string `uri:"date" binding:"required,datetime=2006-01-02"`
}
