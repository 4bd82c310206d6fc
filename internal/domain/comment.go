package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Author es la vista minima del usuario que escribio un comentario.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Comment es un comentario sobre un perfil, con votos opcionales y likes.
type Comment struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Votes
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// AuthorName se resuelve en lectura; vacio si el usuario no existe.
	AuthorName string `json:"-"`
}

// LikeCount es el tamano del conjunto de likes.
func (c Comment) LikeCount() int {
	return len(c.Likes)
}

// LikedBy indica si userID esta en el conjunto de likes.
func (c Comment) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}

// MarshalJSON agrega likeCount y el autor resuelto.
func (c Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	p := plain(c)
	p.Likes = likes

	var author *Author
	if c.AuthorName != "" {
		author = &Author{ID: c.UserID, Name: c.AuthorName}
	}
	return json.Marshal(struct {
		plain
		Author    *Author `json:"author,omitempty"`
		LikeCount int     `json:"likeCount"`
	}{
		plain:     p,
		Author:    author,
		LikeCount: len(likes),
	})
}
