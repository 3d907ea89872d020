package dto

type UploadResponse struct {
	Success   bool   `json:"success"`
	PublicURL string `json:"publicURL,omitempty" example:"http://localhost:3000/uploads/registrations/id-proofs/leaders/xyz.pdf"`
	Error     string `json:"error,omitempty"`
}
