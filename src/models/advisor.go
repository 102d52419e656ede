package models

type Advisor struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	Bio            string  `json:"bio"`
	Image          string  `json:"image"`
}
