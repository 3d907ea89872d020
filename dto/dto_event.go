package dto

type EventItem struct {
	Slug            string  `json:"slug"             example:"hackathon-2026"`
	Title           string  `json:"title"            example:"Gantavya Hackathon"`
	RegistrationFee float64 `json:"registration_fee" example:"1000"`
	TeamSizeMin     int     `json:"team_size_min"    example:"1"`
	TeamSizeMax     int     `json:"team_size_max"    example:"4"`
	Description     string  `json:"description"`
	Category        string  `json:"category"         example:"technical"`
}

type EventListResponse struct {
	Success bool        `json:"success"`
	Data    []EventItem `json:"data"`
	Error   string      `json:"error,omitempty"`
}

type ParticipantCountResponse struct {
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}
