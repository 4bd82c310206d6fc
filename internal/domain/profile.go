package domain

import "time"

// DefaultProfileImage es la imagen asignada cuando el perfil no trae una.
const DefaultProfileImage = "https://soulverse.boo.world/images/1.png"

// Profile es la ficha publica sobre la que se comenta y vota.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Votes
	Variant      string    `json:"variant,omitempty"`
	Tritype      *int      `json:"tritype,omitempty"`
	Socionics    string    `json:"socionics,omitempty"`
	Sloan        string    `json:"sloan,omitempty"`
	Psyche       string    `json:"psyche,omitempty"`
	Temperaments string    `json:"temperaments,omitempty"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
